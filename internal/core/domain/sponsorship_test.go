package domain_test

import (
	"testing"

	"github.com/kwallet-network/kwallet/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShouldSponsor(t *testing.T) {
	fee := uint64(1000000)
	threshold := uint64(100000000000)
	richSponsor := threshold + 1

	tests := []struct {
		name     string
		opts     domain.SponsorshipOpts
		expected bool
	}{
		{
			"koin with enough mana",
			domain.SponsorshipOpts{domain.TokenKOIN, 100000000, 200000000, fee, richSponsor, threshold},
			false,
		},
		{
			"koin amount plus fee exactly current",
			domain.SponsorshipOpts{domain.TokenKOIN, 198500000, 200000000, fee, richSponsor, threshold},
			false,
		},
		{
			"koin amount plus fee above current",
			domain.SponsorshipOpts{domain.TokenKOIN, 198500001, 200000000, fee, richSponsor, threshold},
			true,
		},
		{
			"koin sponsor below threshold",
			domain.SponsorshipOpts{domain.TokenKOIN, 198500001, 200000000, fee, threshold, threshold},
			false,
		},
		{
			"vhp with enough mana",
			domain.SponsorshipOpts{domain.TokenVHP, 5000000000, 3000000, fee, richSponsor, threshold},
			false,
		},
		{
			"vhp with low mana",
			domain.SponsorshipOpts{domain.TokenVHP, 1, 2999999, fee, richSponsor, threshold},
			true,
		},
		{
			"vhp sponsor empty",
			domain.SponsorshipOpts{domain.TokenVHP, 1, 0, fee, 0, threshold},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ShouldSponsor(tt.opts))
		})
	}
}
