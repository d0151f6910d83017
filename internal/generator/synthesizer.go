package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerworks/txn-generator/internal/catalog"
)

const (
	invoiceStatusPaid       = "Paid"
	transactionTypePurchase = "Purchase"
	currencyAUD             = "AUD"
)

// Record is one synthesized purchase transaction. Fields not listed here
// (external reference, interface date, agreement id, advised earnings, order
// and delivery references) are always empty on the wire.
type Record struct {
	Date             time.Time
	Supplier         string
	Branch           string
	InvoiceStatus    string
	Product          string
	TransactionType  string
	Units            int
	Value            decimal.Decimal
	Currency         string
	PrimaryKey       string
	InvoiceReference string
}

// MonthParams drives one month of synthesis.
type MonthParams struct {
	RecordCount int
	Year        int
	Month       int // 1-based
	UnitsMax    int
	SupplierID  string
}

// SynthesizeMonth produces exactly RecordCount records for the target month.
// Record index i maps to day (i mod daysInMonth)+1, so dates repeat when the
// count exceeds the month length, and to product i mod catalog size. Units
// are uniform in [1, UnitsMax]; value is units times unit price rounded to
// three decimals. Reference keys are positional: n is the 1-based index
// within the month, unique by construction.
func SynthesizeMonth(rng Rand, cat *catalog.Catalog, p MonthParams) []Record {
	daysInMonth := time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	unitsMax := p.UnitsMax
	if unitsMax < 1 {
		unitsMax = 1
	}

	productIDs := cat.ProductIDs()
	records := make([]Record, 0, p.RecordCount)
	for i := 0; i < p.RecordCount; i++ {
		productID := productIDs[i%len(productIDs)]
		price, _ := cat.Price(productID)

		units := 1 + rng.IntN(unitsMax)
		n := i + 1

		records = append(records, Record{
			Date:             time.Date(p.Year, time.Month(p.Month), i%daysInMonth+1, 0, 0, 0, 0, time.UTC),
			Supplier:         p.SupplierID,
			Branch:           Branches[rng.IntN(len(Branches))],
			InvoiceStatus:    invoiceStatusPaid,
			Product:          productID,
			TransactionType:  transactionTypePurchase,
			Units:            units,
			Value:            price.Mul(decimal.NewFromInt(int64(units))).Round(3),
			Currency:         currencyAUD,
			PrimaryKey:       fmt.Sprintf("%s-PRI-%02d-%d-%d", p.SupplierID, p.Month, p.Year, n),
			InvoiceReference: fmt.Sprintf("%s-INV-%02d-%d-%d", p.SupplierID, p.Month, p.Year, n),
		})
	}

	return records
}
