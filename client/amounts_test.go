package client

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAmountClient(t *testing.T, divisor int64) *Client {
	t.Helper()
	c, err := NewClient(Config{APIKey: "test-key", DecimalDivisor: divisor})
	require.NoError(t, err)
	return c
}

func TestToAtomicUnits(t *testing.T) {
	c := newAmountClient(t, 100000000)

	atomic, err := c.ToAtomicUnits("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(150000000), atomic)

	atomic, err = c.ToAtomicUnits("0.000000001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), atomic, "sub-atomic remainders floor to zero")

	atomic, err = c.ToAtomicUnits("2")
	require.NoError(t, err)
	assert.Equal(t, int64(200000000), atomic)
}

func TestToAtomicUnits_NonNumeric(t *testing.T) {
	c := newAmountClient(t, 100000000)

	_, err := c.ToAtomicUnits("abc")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Param)
}

func TestFromAtomicUnits(t *testing.T) {
	c := newAmountClient(t, 100000000)

	d, err := c.FromAtomicUnits(json.Number("150000000"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.5")), "got %s", d)
}

func TestFromAtomicUnits_NonNumeric(t *testing.T) {
	c := newAmountClient(t, 100000000)

	_, err := c.FromAtomicUnits(json.Number("abc"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestFromAtomicUnits_FractionalPassthrough(t *testing.T) {
	c := newAmountClient(t, 100000000)

	// A value carrying a fractional part is treated as already converted
	// and returned unchanged, not divided again.
	d, err := c.FromAtomicUnits(json.Number("1.5"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.5")), "got %s", d)
}

func TestAtomicRoundTrip(t *testing.T) {
	c := newAmountClient(t, 100000000)

	for _, atomic := range []int64{0, 1, 99, 100000000, 150000000, 123456789012345} {
		d, err := c.FromAtomicUnits(json.Number(strconv.FormatInt(atomic, 10)))
		require.NoError(t, err)

		back, err := c.ToAtomicUnits(d.String())
		require.NoError(t, err)
		assert.Equal(t, atomic, back, "round trip of %d", atomic)
	}
}

func TestConversion_CustomDivisor(t *testing.T) {
	c := newAmountClient(t, 100)

	atomic, err := c.ToAtomicUnits("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(150), atomic)

	d, err := c.FromAtomicUnits(json.Number("150"))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.5")))
}

func TestNewDestination(t *testing.T) {
	c := newAmountClient(t, 100000000)

	dest := c.NewDestination("addr1", decimal.RequireFromString("2.25"))
	assert.Equal(t, "addr1", dest.Address)
	assert.Equal(t, int64(225000000), dest.Amount)
}
