package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse_Valid(t *testing.T) {
	data := []byte("ProductID,Price\nP1,10.00\nP2,5.50\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, 2, cat.Size())
	assert.Equal(t, []string{"P1", "P2"}, cat.ProductIDs())

	price, ok := cat.Price("P2")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("5.50")))
}

func TestParse_ColumnOrderAndExtraColumnsIgnored(t *testing.T) {
	data := []byte("Notes,Price,ProductID\nirrelevant,3.25,P9\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"P9"}, cat.ProductIDs())

	price, ok := cat.Price("P9")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("3.25")))
}

func TestParse_MissingPriceColumn(t *testing.T) {
	data := []byte("ProductID,Cost\nP1,10.00\n")

	cat, err := Parse(data)
	assert.Nil(t, cat)

	var missing *MissingColumnsError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Price"}, missing.Columns)
	assert.Contains(t, err.Error(), "Price")
}

func TestParse_MissingBothColumns(t *testing.T) {
	data := []byte("SKU,Cost\nP1,10.00\n")

	_, err := Parse(data)

	var missing *MissingColumnsError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"ProductID", "Price"}, missing.Columns)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse([]byte(""))

	var missing *MissingColumnsError
	assert.ErrorAs(t, err, &missing)
}

func TestParse_HeaderOnlyIsEmptyCatalog(t *testing.T) {
	cat, err := Parse([]byte("ProductID,Price\n"))
	assert.Nil(t, cat)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParse_SkipsIncompleteRows(t *testing.T) {
	data := []byte("ProductID,Price\n" +
		",10.00\n" + // no product
		"P1,\n" + // no price
		"P2,7.00\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"P2"}, cat.ProductIDs())
}

func TestParse_SkipsShortRows(t *testing.T) {
	data := []byte("ProductID,Price\nP1\nP2,4.00\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"P2"}, cat.ProductIDs())
}

// Non-numeric prices are rejected row-by-row rather than carried forward as
// unusable values; generation only ever sees parseable prices.
func TestParse_SkipsNonNumericPrice(t *testing.T) {
	data := []byte("ProductID,Price\nP1,not-a-price\nP2,2.00\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"P2"}, cat.ProductIDs())

	_, ok := cat.Price("P1")
	assert.False(t, ok)
}

func TestParse_OnlyUnusableRowsIsEmptyCatalog(t *testing.T) {
	data := []byte("ProductID,Price\nP1,bad\n,3.00\n")

	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParse_DuplicateProductLastWins(t *testing.T) {
	data := []byte("ProductID,Price\nP1,1.00\nP2,2.00\nP1,9.99\n")

	cat, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2"}, cat.ProductIDs(), "position from first occurrence")

	price, _ := cat.Price("P1")
	assert.True(t, price.Equal(decimal.RequireFromString("9.99")), "price from last occurrence")
}

func TestParse_MalformedCSVRow(t *testing.T) {
	data := []byte("ProductID,Price\n\"P1,1.00\n")

	_, err := Parse(data)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyCatalog))
}
