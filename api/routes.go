package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/tally-networks/finance-bot/internal/handlers/v1/status"
	"github.com/tally-networks/finance-bot/internal/handlers/v1/transaction"
	"github.com/tally-networks/finance-bot/internal/handlers/v1/webhook"
	"github.com/tally-networks/finance-bot/internal/logging"
)

type Rest struct {
	Logger       *logrus.Logger
	Port         string
	ReportDir    string
	Webhook      *webhook.Handler
	Transactions *transaction.ListTransactionsHandler
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", logging.LoggingWrapper("Webhook", r.Logger, r.Webhook.Handler))
	mux.HandleFunc("/", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	// Generated chart artifacts are exposed here so the transport can fetch
	// the media URLs embedded in replies.
	mux.Handle("/reports/", http.StripPrefix("/reports/", http.FileServer(http.Dir(r.ReportDir))))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-bot", "1.0.0"))
	r.Transactions.Register(humaAPI)

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
