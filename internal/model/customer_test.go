package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForSpent(t *testing.T) {
	cases := []struct {
		spent float64
		want  LoyaltyTier
	}{
		{0, LoyaltyBronze},
		{499.99, LoyaltyBronze},
		{500, LoyaltySilver},
		{1999.99, LoyaltySilver},
		{2000, LoyaltyGold},
		{4999.99, LoyaltyGold},
		{5000, LoyaltyPlatinum},
		{12000, LoyaltyPlatinum},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForSpent(tc.spent), "spent=%v", tc.spent)
	}
}
