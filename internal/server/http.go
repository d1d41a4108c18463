package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/port"
	"orbiont.com/meetmetrics/internal/handler"
)

type HTTPServer struct {
	echo                *echo.Echo
	pipelineService     port.PipelineService
	employeeSyncService port.EmployeeSyncService
}

func NewHTTPServer(
	pipelineService port.PipelineService,
	employeeSyncService port.EmployeeSyncService,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:                e,
		pipelineService:     pipelineService,
		employeeSyncService: employeeSyncService,
	}

	// Initialize handlers
	pipelineHandler := handler.NewPipelineHTTPHandler(pipelineService)
	employeeHandler := handler.NewEmployeeHTTPHandler(employeeSyncService)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/activities/push", pipelineHandler.HandlePushDate())
	e.GET("/api/v1/activities/range", pipelineHandler.HandleRange())
	e.GET("/api/v1/activities/backfill", pipelineHandler.HandleBackfill())
	e.GET("/api/v1/meetings/:conferenceId", pipelineHandler.HandleLookup())
	e.POST("/api/v1/employees/sync", employeeHandler.HandleSync())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "meetmetrics",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
