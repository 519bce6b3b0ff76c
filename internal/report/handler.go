package report

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/platform/auth"
)

// Handler serves the reporting endpoint. The response envelope carries a
// success flag so clients can branch without inspecting the HTTP status;
// failures never leak source error details.
type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports", auth.RequireRole("admin", "doctor", "receptionist"))
	g.GET("", h.Generate)
}

type reportResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}

type reportError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *Handler) Generate(c echo.Context) error {
	reportType := c.QueryParam("type")
	rangeKey := c.QueryParam("range")
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")

	data, meta, err := h.svc.Generate(c.Request().Context(), reportType, rangeKey, startDate, endDate, time.Now())
	if err != nil {
		h.logger.Error().Err(err).
			Str("type", reportType).
			Str("range", rangeKey).
			Msg("report generation failed")
		return c.JSON(http.StatusInternalServerError, reportError{
			Success: false,
			Error:   "failed to generate report",
		})
	}
	return c.JSON(http.StatusOK, reportResponse{Success: true, Data: data, Meta: meta})
}
