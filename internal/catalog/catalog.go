package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	productIDColumn = "ProductID"
	priceColumn     = "Price"
)

// ErrEmptyCatalog is returned when the input contains no usable price rows.
var ErrEmptyCatalog = errors.New("catalog: no usable price rows")

// MissingColumnsError names the required header columns absent from the input.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("catalog: missing required column(s): %s", strings.Join(e.Columns, ", "))
}

// Catalog maps product identifiers to unit prices. Product order follows
// first occurrence in the input so the record-index assignment is stable
// across runs.
type Catalog struct {
	ids    []string
	prices map[string]decimal.Decimal
}

// Parse reads a comma-delimited byte stream with a mandatory header row.
// Header columns ProductID and Price are required in any order; extra columns
// are ignored. Rows missing either cell are skipped. Rows whose Price cell is
// not a valid decimal are skipped too: prices never carry non-numeric values
// into downstream computation. A duplicate ProductID overwrites the earlier
// price but keeps its original position.
func Parse(data []byte) (*Catalog, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &MissingColumnsError{Columns: []string{productIDColumn, priceColumn}}
		}
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}

	idCol, priceCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case productIDColumn:
			idCol = i
		case priceColumn:
			priceCol = i
		}
	}

	var missing []string
	if idCol == -1 {
		missing = append(missing, productIDColumn)
	}
	if priceCol == -1 {
		missing = append(missing, priceColumn)
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cat := &Catalog{prices: make(map[string]decimal.Decimal)}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read row: %w", err)
		}
		if idCol >= len(row) || priceCol >= len(row) {
			continue
		}

		id := strings.TrimSpace(row[idCol])
		rawPrice := strings.TrimSpace(row[priceCol])
		if id == "" || rawPrice == "" {
			continue
		}

		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			continue
		}

		if _, seen := cat.prices[id]; !seen {
			cat.ids = append(cat.ids, id)
		}
		cat.prices[id] = price
	}

	if len(cat.ids) == 0 {
		return nil, ErrEmptyCatalog
	}

	return cat, nil
}

// ProductIDs returns the product identifiers in first-occurrence order.
func (c *Catalog) ProductIDs() []string {
	return c.ids
}

// Price returns the unit price for a product.
func (c *Catalog) Price(id string) (decimal.Decimal, bool) {
	price, ok := c.prices[id]
	return price, ok
}

// Size returns the number of distinct products.
func (c *Catalog) Size() int {
	return len(c.ids)
}
