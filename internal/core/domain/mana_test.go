package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMana(t *testing.T) {
	tests := []struct {
		rc, balance uint64
		expected    domain.Mana
	}{
		{100, 200, domain.Mana{Current: 100, Max: 200}},
		{200, 200, domain.Mana{Current: 200, Max: 200}},
		{300, 200, domain.Mana{Current: 200, Max: 200}},
		{0, 0, domain.Mana{}},
	}
	for _, tt := range tests {
		mana := domain.NewMana(tt.rc, tt.balance)
		assert.Equal(t, tt.expected, mana)
		assert.LessOrEqual(t, mana.Current, mana.Max)
	}
	assert.True(t, domain.NewMana(300, 200).IsFull())
	assert.False(t, domain.NewMana(100, 200).IsFull())
}

func TestManaTimeToReach(t *testing.T) {
	window := domain.DefaultManaRegenWindow
	mana := domain.Mana{Current: 200000000, Max: 1593000000}

	tests := []struct {
		name      string
		target    uint64
		expected  time.Duration
		reachable bool
	}{
		{"already available", 100000000, 0, true},
		{"exactly current", 200000000, 0, true},
		{"full", 1593000000, time.Duration(377762711864406), true},
		{"above max", 1593000001, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait, ok := mana.TimeToReach(tt.target, window)
			require.Equal(t, tt.reachable, ok)
			assert.Equal(t, tt.expected, wait)
		})
	}

	t.Run("linear refill", func(t *testing.T) {
		empty := domain.Mana{Current: 0, Max: 1000}
		wait, ok := empty.TimeToReach(1000, window)
		require.True(t, ok)
		assert.Equal(t, window, wait)

		wait, ok = empty.TimeToReach(500, window)
		require.True(t, ok)
		assert.Equal(t, window/2, wait)
	})

	t.Run("large balances", func(t *testing.T) {
		huge := domain.Mana{Current: 0, Max: math.MaxUint64}
		wait, ok := huge.TimeToReach(math.MaxUint64, window)
		require.True(t, ok)
		assert.Equal(t, window, wait)
	})

	t.Run("default window", func(t *testing.T) {
		empty := domain.Mana{Current: 0, Max: 10}
		wait, ok := empty.TimeToReach(10, 0)
		require.True(t, ok)
		assert.Equal(t, domain.DefaultManaRegenWindow, wait)
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{30 * time.Second, "less than a minute"},
		{35 * time.Minute, "35m"},
		{3*time.Hour + 5*time.Minute, "3h 5m"},
		{52 * time.Hour, "2d 4h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.FormatDuration(tt.d))
	}
}
