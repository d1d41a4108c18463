package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/port"
)

type EmployeeHTTPHandler struct {
	employeeSyncService port.EmployeeSyncService
}

type EmployeeSyncResponse struct {
	Message       string `json:"message"`
	EmployeeCount int    `json:"employee_count"`
}

func NewEmployeeHTTPHandler(employeeSyncService port.EmployeeSyncService) *EmployeeHTTPHandler {
	return &EmployeeHTTPHandler{
		employeeSyncService: employeeSyncService,
	}
}

// HandleSync replaces the analytics employee table with the current
// directory contents.
func (h *EmployeeHTTPHandler) HandleSync() echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := h.employeeSyncService.Sync(c.Request().Context())
		if err != nil {
			log.WithError(err).Error("Employee sync failed")
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": "failed to sync employees",
			})
		}

		return c.JSON(http.StatusOK, EmployeeSyncResponse{
			Message:       "Employees synced",
			EmployeeCount: count,
		})
	}
}
