package service

import (
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/ledgerworks/txn-generator/internal/catalog"
	"github.com/ledgerworks/txn-generator/internal/export"
	"github.com/ledgerworks/txn-generator/internal/generator"
)

const volumePrecision = 1

// Output is the result of one generation run: the consolidated CSV text plus
// a suggested download filename carrying a run-scoped identifier. The
// identifier names the artifact only; it never appears in record content.
type Output struct {
	CSV      string
	Filename string
	Records  int
}

// GenerationService synthesizes a full year of purchase transactions from a
// supplier price catalog.
type GenerationService struct {
	rng      generator.Rand
	minUnits float64
	maxUnits float64
}

// NewGenerationService creates a GenerationService drawing from rng with the
// given monthly volume bounds.
func NewGenerationService(rng generator.Rand, minUnits, maxUnits float64) *GenerationService {
	return &GenerationService{rng: rng, minUnits: minUnits, maxUnits: maxUnits}
}

// Generate runs the pipeline: one VolumeModel draw for all twelve months,
// then one record per product per month in calendar order, formatted into a
// single CSV. Total records are always 12 times the catalog size.
func (s *GenerationService) Generate(cat *catalog.Catalog, supplierID string, year int) (*Output, error) {
	volumes := generator.MonthlyVolumes(s.rng, s.minUnits, s.maxUnits, volumePrecision)

	recordCount := cat.Size()
	records := make([]generator.Record, 0, 12*recordCount)
	for month := 1; month <= 12; month++ {
		records = append(records, generator.SynthesizeMonth(s.rng, cat, generator.MonthParams{
			RecordCount: recordCount,
			Year:        year,
			Month:       month,
			UnitsMax:    generator.UnitBound(volumes, month),
			SupplierID:  supplierID,
		})...)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generation: run id: %w", err)
	}

	return &Output{
		CSV:      export.Format(records),
		Filename: fmt.Sprintf("%s-transactions-%d-%s.csv", supplierID, year, runID),
		Records:  len(records),
	}, nil
}

// GenerateFromUpload parses the uploaded price list and runs Generate.
// Either the full consolidated CSV is produced or the run aborts with the
// parse error; there is no partial output.
func (s *GenerationService) GenerateFromUpload(data []byte, supplierID string, year int) (*Output, error) {
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}
	return s.Generate(cat, supplierID, year)
}
