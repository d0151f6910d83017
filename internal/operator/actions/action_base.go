package actions

import (
	"context"

	"github.com/ledgerworks/txn-generator/internal/service"
)

type IAction interface {
	Perform(ctx context.Context, svc *service.Service) error
}
