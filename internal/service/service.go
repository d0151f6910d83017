package service

import (
	"github.com/ledgerworks/txn-generator/internal/config"
	"github.com/ledgerworks/txn-generator/internal/generator"
)

// Service holds all business logic services.
type Service struct {
	Generation *GenerationService
}

// NewService creates a new Service wired to a production random source.
func NewService(env *config.Config) *Service {
	return &Service{
		Generation: NewGenerationService(generator.NewRand(), env.MinMonthlyUnits, env.MaxMonthlyUnits),
	}
}
