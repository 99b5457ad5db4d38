package app

import (
	"github.com/vancomm/guard-patrol/internal/handlers"
)

func (a *App) loadRoutes() {
	patrol := handlers.NewPatrolHandler(a.logger, a.patrol, a.ws)

	a.router.HandleFunc("GET "+a.basePath+"/status", handlers.Status(a.logger))
	a.router.HandleFunc("POST "+a.basePath+"/patrol", patrol.Analyze)
	a.router.HandleFunc("GET "+a.basePath+"/patrol/connect", patrol.ConnectWS)
}
