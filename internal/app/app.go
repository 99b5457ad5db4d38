package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/guard-patrol/internal/config"
	"github.com/vancomm/guard-patrol/internal/middleware"
)

type App struct {
	logger   *logrus.Logger
	router   *http.ServeMux
	addr     string
	basePath string
	patrol   *config.Patrol
	ws       *config.WebSocket
}

func New(logger *logrus.Logger) *App {
	router := http.NewServeMux()

	app := &App{
		logger:   logger,
		router:   router,
		addr:     config.Port(),
		basePath: config.BasePath(),
	}

	return app
}

func (a *App) setup() error {
	patrol, err := config.NewPatrol()
	if err != nil {
		return err
	}

	a.patrol = patrol

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}

	a.ws = ws

	a.loadRoutes()

	return nil
}

// Handler returns the fully wrapped router. Routes are loaded on first use.
func (a *App) Handler() (http.Handler, error) {
	if a.patrol == nil {
		if err := a.setup(); err != nil {
			return nil, err
		}
	}
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(),
	), nil
}

func (a *App) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    a.addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.WithFields(logrus.Fields{
		"addr":      a.addr,
		"base_path": a.basePath,
		"workers":   a.patrol.Workers,
		"max_cells": a.patrol.MaxCells,
	}).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
