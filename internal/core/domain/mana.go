package domain

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// DefaultManaRegenWindow is the time an account takes to refill its mana
// from zero to max.
const DefaultManaRegenWindow = 5 * 24 * time.Hour

// Mana is the rate-limiting resource of an account, in base units. Max is
// the KOIN balance, Current never exceeds it.
type Mana struct {
	Current uint64
	Max     uint64
}

// NewMana returns the mana of an account given its resource credits and KOIN
// balance.
func NewMana(rc, koinBalance uint64) Mana {
	current := rc
	if current > koinBalance {
		current = koinBalance
	}
	return Mana{Current: current, Max: koinBalance}
}

// IsFull ...
func (m Mana) IsFull() bool {
	return m.Current >= m.Max
}

// TimeToReach returns how long until Current regenerates up to target,
// assuming a linear refill from 0 to Max over window. The boolean is false
// if target can never be reached because it exceeds Max.
func (m Mana) TimeToReach(target uint64, window time.Duration) (time.Duration, bool) {
	if target > m.Max {
		return 0, false
	}
	if target <= m.Current {
		return 0, true
	}
	if window <= 0 {
		window = DefaultManaRegenWindow
	}

	// (target - current) * window / max, computed on big ints as the
	// product overflows int64 for large balances.
	missing := new(big.Int).SetUint64(target - m.Current)
	wait := missing.Mul(missing, big.NewInt(int64(window)))
	wait.Div(wait, new(big.Int).SetUint64(m.Max))
	if !wait.IsInt64() {
		return time.Duration(math.MaxInt64), true
	}
	return time.Duration(wait.Int64()), true
}

// FormatDuration renders a wait time the way it is shown to users, like
// "2d 4h" or "35m".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
