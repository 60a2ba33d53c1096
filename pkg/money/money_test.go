package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/orderly-app/orderly-api/pkg/money"
)

func TestFormat_GroupsAndPadsDecimals(t *testing.T) {
	assert.Equal(t, "AED 1,234.50", money.Format("AED", decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "INR 170.00", money.Format("INR", decimal.NewFromInt(170)))
}

func TestFormat_NoCurrencyCode(t *testing.T) {
	assert.Equal(t, "8.50", money.Format("", decimal.NewFromFloat(8.5)))
}

func TestFormat_NegativeAmount(t *testing.T) {
	// Negative totals are legal (discount can exceed subtotal plus tax).
	assert.Equal(t, "USD -10.00", money.Format("USD", decimal.NewFromInt(-10)))
}
