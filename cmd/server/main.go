package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/guard-patrol/internal/app"
	"github.com/vancomm/guard-patrol/internal/config"
	"github.com/vancomm/guard-patrol/internal/logging"
	"github.com/vancomm/guard-patrol/internal/patrol"
)

var log = logrus.New()

func setupLogging() {
	opts := logging.Options{
		Development: config.Development(),
		File:        config.LogFile(),
	}
	if err := logging.Configure(log, opts); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	patrol.Log = log
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	log.WithField("development", config.Development()).Info("starting up")

	if err := app.New(log).Start(mainCtx); err != nil {
		log.Fatalf("exit reason: %s", err)
	}

	log.Info("shut down")
}
