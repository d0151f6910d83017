package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ledgerworks/txn-generator/internal/catalog"
	"github.com/ledgerworks/txn-generator/internal/logging"
	"github.com/ledgerworks/txn-generator/internal/operator/actions"
)

// actionProcessor runs an action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Handler handles POST /v1/generate: a multipart price-list upload in, a
// year of synthesized purchase transactions out as a CSV attachment.
type Handler struct {
	Operator       actionProcessor
	MaxUploadBytes int64
}

func NewHandler(op actionProcessor, maxUploadBytes int64) *Handler {
	return &Handler{Operator: op, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return errors.New("generate: method not POST")
	}

	action, err := parseGenerateRequest(req, h.MaxUploadBytes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return err
	}

	logData.AddData("supplier", action.SupplierID)
	logData.AddData("year", action.Year)

	if err := h.Operator.Process(req.Context(), action); err != nil {
		http.Error(w, err.Error(), generationStatus(err))
		return err
	}

	logData.AddData("records", action.Output.Records)
	logData.AddData("filename", action.Output.Filename)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", action.Output.Filename))
	_, err = io.WriteString(w, action.Output.CSV)
	return err
}

// parseGenerateRequest validates the multipart form: the pricelist file plus
// supplier and year fields are all required.
func parseGenerateRequest(req *http.Request, maxUploadBytes int64) (*actions.GenerateTransactions, error) {
	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("generate: parse upload: %w", err)
	}

	file, _, err := req.FormFile("pricelist")
	if err != nil {
		return nil, errors.New("generate: missing pricelist upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("generate: read upload: %w", err)
	}

	supplierID := req.FormValue("supplier")
	if supplierID == "" {
		return nil, errors.New("generate: missing supplier")
	}

	year, err := strconv.Atoi(req.FormValue("year"))
	if err != nil {
		return nil, fmt.Errorf("generate: invalid year: %w", err)
	}

	return &actions.GenerateTransactions{
		PriceList:  data,
		SupplierID: supplierID,
		Year:       year,
	}, nil
}

// generationStatus maps catalog data-quality failures to 400; anything else
// is a server-side failure.
func generationStatus(err error) int {
	var missing *catalog.MissingColumnsError
	if errors.As(err, &missing) || errors.Is(err, catalog.ErrEmptyCatalog) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
