package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/port"
)

const dateLayout = "2006-01-02"

type PipelineHTTPHandler struct {
	pipelineService port.PipelineService
}

type PushDateResponse struct {
	Message     string `json:"message"`
	Date        string `json:"date"`
	RecordCount int    `json:"record_count"`
}

func NewPipelineHTTPHandler(pipelineService port.PipelineService) *PipelineHTTPHandler {
	return &PipelineHTTPHandler{
		pipelineService: pipelineService,
	}
}

// HandlePushDate ingests a single day. The date query parameter is
// required and must be a calendar date.
func (h *PipelineHTTPHandler) HandlePushDate() echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.QueryParam("date")
		if raw == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "date query parameter is required",
			})
		}

		day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "date must be formatted as YYYY-MM-DD",
			})
		}

		count, err := h.pipelineService.ProcessDate(c.Request().Context(), day)
		if err != nil {
			log.WithError(err).WithField("date", raw).Error("Activity push failed")
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": "failed to process activities for the requested date",
			})
		}

		return c.JSON(http.StatusOK, PushDateResponse{
			Message:     "Activities pushed",
			Date:        raw,
			RecordCount: count,
		})
	}
}

// HandleRange ingests every day in [start, end] inclusive. Individual
// day failures are logged and skipped by the service.
func (h *PipelineHTTPHandler) HandleRange() echo.HandlerFunc {
	return func(c echo.Context) error {
		start, err := time.ParseInLocation(dateLayout, c.QueryParam("start"), time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "start must be formatted as YYYY-MM-DD",
			})
		}

		end, err := time.ParseInLocation(dateLayout, c.QueryParam("end"), time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "end must be formatted as YYYY-MM-DD",
			})
		}

		summary, err := h.pipelineService.ProcessRange(c.Request().Context(), start, end)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRange) {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": err.Error(),
				})
			}
			log.WithError(err).Error("Range processing failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to process the requested range",
			})
		}

		return c.JSON(http.StatusOK, summary)
	}
}

// HandleBackfill replays the past N days up to and including
// yesterday. Without a days parameter the service falls back to its
// default window.
func (h *PipelineHTTPHandler) HandleBackfill() echo.HandlerFunc {
	return func(c echo.Context) error {
		var days int
		if raw := c.QueryParam("days"); raw != "" {
			if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "days must be an integer",
				})
			}
		}

		summary, err := h.pipelineService.ProcessPastDays(c.Request().Context(), days)
		if err != nil {
			log.WithError(err).WithField("days", days).Error("Backfill failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to backfill activities",
			})
		}

		return c.JSON(http.StatusOK, summary)
	}
}

// HandleLookup returns the normalized records of one conference,
// without pushing anything downstream.
func (h *PipelineHTTPHandler) HandleLookup() echo.HandlerFunc {
	return func(c echo.Context) error {
		conferenceID := c.Param("conferenceId")

		records, err := h.pipelineService.LookupConference(c.Request().Context(), conferenceID)
		if err != nil {
			log.WithError(err).WithField("conferenceID", conferenceID).Error("Conference lookup failed")
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": "failed to look up conference",
			})
		}

		if len(records) == 0 {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "no activity found for conference",
			})
		}

		return c.JSON(http.StatusOK, records)
	}
}
