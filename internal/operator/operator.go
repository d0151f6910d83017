package operator

import (
	"context"

	"github.com/ledgerworks/txn-generator/internal/operator/actions"
	"github.com/ledgerworks/txn-generator/internal/service"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	service *service.Service
	queue   chan ActionItem
}

func NewOperator(svc *service.Service, queue chan ActionItem) *Operator {
	return &Operator{
		service: svc,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: item.action.Perform(item.ctx, o.service)}
	}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
