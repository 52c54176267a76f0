package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

func TestID_RoundTrip(t *testing.T) {
	prefixes := []string{
		format.PrefixProduct, format.PrefixCategory, format.PrefixSupplier, format.PrefixWarehouse,
		format.PrefixOrder, format.PrefixUser, format.PrefixOrderItem,
	}
	for _, prefix := range prefixes {
		for _, id := range []int64{1, 7, 42, 999, 1000, 123456} {
			display := format.ID(prefix, id)
			got, err := format.ParseID(display)
			require.NoError(t, err, display)
			assert.Equal(t, id, got, display)
		}
	}
}

func TestID_Padding(t *testing.T) {
	assert.Equal(t, "P007", format.ID(format.PrefixProduct, 7))
	assert.Equal(t, "OI012", format.ID(format.PrefixOrderItem, 12))
	assert.Equal(t, "W1234", format.ID(format.PrefixWarehouse, 1234))
}

func TestParseID_AcceptsBareAndPrefixed(t *testing.T) {
	for in, want := range map[string]int64{"7": 7, "007": 7, "P001": 1, "W002": 2, " 15 ": 15, "oi3": 3} {
		got, err := format.ParseID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "P", "abc", "P1x", "1.5"} {
		_, err := format.ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestPeso(t *testing.T) {
	assert.Equal(t, "₱1,234.50", format.Peso(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "₱0.00", format.Peso(decimal.Zero))
	assert.Equal(t, "₱1,000,000.00", format.Peso(decimal.NewFromInt(1000000)))
	assert.Equal(t, "₱0.00", format.PesoNull(decimal.NullDecimal{}))
}

func TestParseMoney(t *testing.T) {
	for in, want := range map[string]string{"₱1,234.50": "1234.5", "1,234.50": "1234.5", "99": "99", " ₱ 10.25 ": "10.25"} {
		got, err := format.ParseMoney(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), in)
	}
	_, err := format.ParseMoney("₱")
	assert.Error(t, err)
	_, err = format.ParseMoney("twelve")
	assert.Error(t, err)
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-09 03:04:05 PM", format.DateTime(ts))
	assert.Equal(t, "", format.DateTime(time.Time{}))
}
