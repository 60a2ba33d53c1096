package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-app/orderly-api/internal/domain/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestParseTaxLines_CurrentListShape(t *testing.T) {
	raw := []byte(`[{"id":"t1","name":"VAT","rate":"5","mode":"fixed","enabled":true},{"id":"t2","name":"Service","rate":"10","mode":"editable","enabled":false}]`)

	taxes, err := parseTaxLines(raw)
	require.NoError(t, err)
	require.Len(t, taxes, 2)
	assert.Equal(t, "VAT", taxes[0].Name)
	assert.True(t, taxes[0].Rate.Equal(dec(t, "5")))
	assert.Equal(t, entity.TaxModeEditable, taxes[1].Mode)
	assert.False(t, taxes[1].Enabled)
}

func TestParseTaxLines_LegacySingleObjectShape(t *testing.T) {
	raw := []byte(`{"rate":"7.5","name":"GST","mode":"","enabled":true}`)

	taxes, err := parseTaxLines(raw)
	require.NoError(t, err)
	require.Len(t, taxes, 1)
	assert.Equal(t, "GST", taxes[0].Name)
	assert.True(t, taxes[0].Rate.Equal(dec(t, "7.5")))
	assert.Equal(t, entity.TaxModeFixed, taxes[0].Mode, "legacy records default to fixed mode")
	assert.True(t, taxes[0].Enabled)
	assert.NotEmpty(t, taxes[0].ID, "migrated lines get an ID so they can be edited")
}

func TestParseTaxLines_LegacyWithoutName(t *testing.T) {
	raw := []byte(`{"rate":"5","enabled":false}`)

	taxes, err := parseTaxLines(raw)
	require.NoError(t, err)
	require.Len(t, taxes, 1)
	assert.Equal(t, "Tax", taxes[0].Name)
	assert.False(t, taxes[0].Enabled)
}

func TestParseTaxLines_EmptyAndNull(t *testing.T) {
	taxes, err := parseTaxLines(nil)
	require.NoError(t, err)
	assert.Nil(t, taxes)

	taxes, err = parseTaxLines([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, taxes)
}

func TestParseTaxLines_Garbage(t *testing.T) {
	_, err := parseTaxLines([]byte(`"not a config"`))
	assert.Error(t, err)
}
