package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/roi-server/api"
	"github.com/carson-networks/roi-server/internal/config"
	"github.com/carson-networks/roi-server/internal/logging"
	"github.com/carson-networks/roi-server/internal/operator"
	"github.com/carson-networks/roi-server/internal/service"
	"github.com/carson-networks/roi-server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	// Validate has already rejected unparsable levels.
	level, _ := logrus.ParseLevel(envConfig.LogLevel)
	logger := logging.SetupLogging(level)
	logger.Info("roi-server starting")

	if err := run(logger, envConfig); err != nil {
		logger.WithError(err).Fatal("roi-server exited")
	}
	logger.Info("roi-server stopped")
}

func run(logger *logrus.Logger, envConfig *config.Config) error {
	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:           logger,
		Port:             envConfig.HTTPPort,
		Reports:          svc.ROI,
		Operator:         delegator,
		DB:               dbStorage.DB,
		DefaultTimeFrame: envConfig.DefaultTimeFrame,
	}
	return httpRest.Serve(ctx)
}
