package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ledgerworks/txn-generator/internal/handlers/v1/generate"
	"github.com/ledgerworks/txn-generator/internal/handlers/v1/status"
	"github.com/ledgerworks/txn-generator/internal/logging"
	"github.com/ledgerworks/txn-generator/internal/operator"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	Operator       *operator.OperatorDelegator
	MaxUploadBytes int64
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()
	generateHandler := generate.NewHandler(r.Operator, r.MaxUploadBytes)

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.HandleFunc("/v1/generate", logging.LoggingWrapper("Generate", r.Logger, generateHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
