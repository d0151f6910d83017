package main

import (
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/ledgerworks/txn-generator/api"
	"github.com/ledgerworks/txn-generator/internal/config"
	"github.com/ledgerworks/txn-generator/internal/logging"
	"github.com/ledgerworks/txn-generator/internal/operator"
	"github.com/ledgerworks/txn-generator/internal/service"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("txn-generator starting")
	logger.Debug(spew.Sdump(envConfig))

	svc := service.NewService(envConfig)

	// One worker: generation runs are serialized, never concurrent.
	delegator := operator.NewOperatorDelegator(svc, 1)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.Port,
			Operator:       delegator,
			MaxUploadBytes: envConfig.MaxUploadBytes,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
