package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	twilioclient "github.com/twilio/twilio-go/client"

	"github.com/tally-networks/finance-bot/api"
	"github.com/tally-networks/finance-bot/internal/bot"
	"github.com/tally-networks/finance-bot/internal/classifier"
	"github.com/tally-networks/finance-bot/internal/config"
	"github.com/tally-networks/finance-bot/internal/handlers/v1/transaction"
	"github.com/tally-networks/finance-bot/internal/handlers/v1/webhook"
	"github.com/tally-networks/finance-bot/internal/logging"
	"github.com/tally-networks/finance-bot/internal/reply"
	"github.com/tally-networks/finance-bot/internal/report"
	"github.com/tally-networks/finance-bot/internal/service"
	"github.com/tally-networks/finance-bot/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-bot starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := storage.Migrate(envConfig.DatabaseURL); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	dbStorage, err := storage.NewStorage(context.Background(), envConfig.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	renderer, err := report.NewPieRenderer(envConfig.ReportDir)
	if err != nil {
		logrus.WithError(err).Fatal("report.NewPieRenderer")
		return
	}

	svc := service.NewService(dbStorage, renderer)
	dispatcher := bot.NewDispatcher(classifier.NewKeywordClassifier(), svc.Finance, svc.Report)
	formatter := reply.NewFormatter(envConfig.PublicHost)

	var validator webhook.SignatureValidator
	if envConfig.TwilioAuthToken != "" {
		requestValidator := twilioclient.NewRequestValidator(envConfig.TwilioAuthToken)
		validator = &requestValidator
	} else {
		logrus.Warn("TWILIO_AUTH_TOKEN not set, webhook signatures will not be checked")
	}

	go func() {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			ReportDir: envConfig.ReportDir,
			Webhook: webhook.NewHandler(
				dispatcher,
				formatter,
				validator,
				envConfig.PublicHost,
			),
			Transactions: transaction.NewListTransactionsHandler(svc.Finance),
		}
		httpRest.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logrus.Info("finance-bot shutting down")
	dbStorage.Close()
}
