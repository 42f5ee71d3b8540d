package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestDumpMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kwallet_test_total",
		Help: "test counter",
	}, []string{"method"})
	registry.MustRegister(counter)
	counter.WithLabelValues("chain.get_account_rc").Add(3)

	path := filepath.Join(t.TempDir(), "stats")
	require.NoError(t, DumpMetrics(path, registry))
	require.NoError(t, DumpMetrics(path, registry))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), `kwallet_test_total{method="chain.get_account_rc"} 3`)
	// dumps are appended
	require.Equal(t, 2, strings.Count(string(content), "# dumped at"))
}

func TestFailingDumpMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "stats")
	require.Error(t, DumpMetrics(path, prometheus.NewRegistry()))
}
