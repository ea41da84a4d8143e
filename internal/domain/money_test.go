package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(MustMoney("289.9"))
	require.NoError(t, err)
	assert.Equal(t, `"289.90"`, string(b))

	var fromNumber, fromString Money
	require.NoError(t, json.Unmarshal([]byte(`349.9`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"349.90"`), &fromString))
	assert.True(t, fromNumber.Equal(fromString.Decimal))

	var bad Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}

func TestNullMoney_JSON(t *testing.T) {
	var n NullMoney
	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.False(t, n.Valid)

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	require.NoError(t, json.Unmarshal([]byte(`"199.00"`), &n))
	assert.True(t, n.Valid)
	assert.Equal(t, "199.00", n.Money.String())
}

func TestNullMoney_Scan(t *testing.T) {
	var n NullMoney
	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)

	require.NoError(t, n.Scan(int64(410)))
	assert.Equal(t, "410.00", n.Money.String())

	require.NoError(t, n.Scan(float64(219.9)))
	assert.Equal(t, "219.90", n.Money.String())

	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, "219.90", v)

	v, err = NullMoney{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestProduct_Pricing(t *testing.T) {
	p := Product{Price: MustMoney("300"), Stock: 3}
	assert.False(t, p.OutOfStock())
	assert.Equal(t, "300.00", p.DisplayPrice().String())

	p.PromoPrice = SomeMoney(MustMoney("250"))
	assert.Equal(t, "300.00", p.DisplayPrice().String(), "promo price only applies while on promotion")

	p.IsPromotion = true
	assert.Equal(t, "250.00", p.DisplayPrice().String())

	p.Stock = 0
	assert.True(t, p.OutOfStock())
}

func TestBlogPage_TotalPages(t *testing.T) {
	assert.Equal(t, 2, BlogPage{Total: 8}.TotalPages(6))
	assert.Equal(t, 1, BlogPage{Total: 6}.TotalPages(6))
	assert.Equal(t, 0, BlogPage{Total: 0}.TotalPages(6))
	assert.Equal(t, 0, BlogPage{Total: 5}.TotalPages(0))
}
