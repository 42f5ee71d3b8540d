package stats

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
)

const (
	BYTE = 1 << (10 * iota)
	KILOBYTE
	MEGABYTE
)

// toMegabytes returns given memory in bytes to megabytes.
func toMegabytes(bytes uint64) float64 {
	return float64(bytes) / MEGABYTE
}

// LogMemoryStatistics logs memory statistics using go runtime library.
func LogMemoryStatistics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	log.WithFields(log.Fields{
		"total_alloc_mb": fmt.Sprintf("%.3f", toMegabytes(memStats.TotalAlloc)),
		"heap_alloc_mb":  fmt.Sprintf("%.3f", toMegabytes(memStats.HeapAlloc)),
		"mallocs":        memStats.Mallocs,
		"frees":          memStats.Frees,
		"goroutines":     runtime.NumGoroutine(),
	}).Debug("memory statistics")
}

// DumpMetrics appends every metric gathered by g to the file at path, in the
// Prometheus text format, preceded by a timestamp line.
func DumpMetrics(path string, g prometheus.Gatherer) error {
	metricFamilies, err := g.Gather()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(writer, "# dumped at %s\n", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	for _, mf := range metricFamilies {
		if _, err := expfmt.MetricFamilyToText(writer, mf); err != nil {
			return err
		}
	}
	return writer.Flush()
}
