package export

import (
	"strconv"
	"strings"

	"github.com/ledgerworks/txn-generator/internal/generator"
)

const dateFormat = "02/01/2006"

// Columns is the fixed output schema, in wire order.
var Columns = []string{
	"Date", "Supplier", "Branch", "Invoice status", "Product",
	"Transaction Type", "Units", "Value", "Currency", "External Reference",
	"Interface Date", "Primary Key", "Agreement ID", "Advised Earnings",
	"Order Reference", "Delivery Reference", "Invoice Reference",
}

// Format serializes records into CSV text. The header row is the literal
// column names joined by commas; every data field is double-quoted verbatim.
// The downstream importer tolerates no quote escaping, so none is applied.
// Rows are joined by newline with no trailing newline.
func Format(records []generator.Record) string {
	var b strings.Builder
	b.WriteString(strings.Join(Columns, ","))

	for _, rec := range records {
		b.WriteByte('\n')
		writeRow(&b, [...]string{
			rec.Date.Format(dateFormat),
			rec.Supplier,
			rec.Branch,
			rec.InvoiceStatus,
			rec.Product,
			rec.TransactionType,
			strconv.Itoa(rec.Units),
			rec.Value.StringFixed(3),
			rec.Currency,
			"", // External Reference
			"", // Interface Date
			rec.PrimaryKey,
			"", // Agreement ID
			"", // Advised Earnings
			"", // Order Reference
			"", // Delivery Reference
			rec.InvoiceReference,
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, fields [17]string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(field)
		b.WriteByte('"')
	}
}
