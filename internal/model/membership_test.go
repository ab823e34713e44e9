package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProfitUndefinedWhilePlaying(t *testing.T) {
	m := &Membership{
		InitialBuyIn: dec("50"),
		TotalBuyIn:   dec("100"),
		Status:       StatusPlaying,
	}

	_, ok := m.Profit()
	assert.False(t, ok)

	_, ok = m.ProfitClass()
	assert.False(t, ok)
}

func TestProfitIsCashOutMinusTotalBuyIn(t *testing.T) {
	cashOut := dec("180")
	m := &Membership{
		InitialBuyIn: dec("50"),
		TotalBuyIn:   dec("100"),
		CashOut:      &cashOut,
		Status:       StatusCompleted,
	}

	profit, ok := m.Profit()
	assert.True(t, ok)
	assert.True(t, profit.Equal(dec("80")))
}

func TestProfitClassification(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		cashOut string
		want    ProfitClass
	}{
		{"gain", "100", "180", ProfitGain},
		{"loss", "100", "40", ProfitLoss},
		{"break even", "100", "100", ProfitEven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cashOut := dec(tt.cashOut)
			m := &Membership{
				TotalBuyIn: dec(tt.total),
				CashOut:    &cashOut,
				Status:     StatusCompleted,
			}

			class, ok := m.ProfitClass()
			assert.True(t, ok)
			assert.Equal(t, tt.want, class)
		})
	}
}

func TestGameTypeValidation(t *testing.T) {
	for _, gt := range GameTypes() {
		assert.True(t, gt.IsValid(), string(gt))
	}
	assert.False(t, GameType("Blackjack").IsValid())
	assert.False(t, GameType("").IsValid())
}
