package actions

import (
	"context"

	"github.com/ledgerworks/txn-generator/internal/service"
)

// GenerateTransactions runs one full-year generation for a supplier.
// Output is populated on success.
type GenerateTransactions struct {
	PriceList  []byte
	SupplierID string
	Year       int

	Output *service.Output
}

func (g *GenerateTransactions) Perform(ctx context.Context, svc *service.Service) error {
	output, err := svc.Generation.GenerateFromUpload(g.PriceList, g.SupplierID, g.Year)
	if err != nil {
		return err
	}

	g.Output = output
	return nil
}
