package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gridgate/internal/modules/grid/application/usecase"
	"gridgate/internal/modules/grid/domain"
	"gridgate/internal/shared/httputil"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// availabilityErrors maps the normalization core's taxonomy onto gateway
// status codes. Integration failures keep their upstream detail in the
// response so tenant operators can diagnose their own wiring.
var availabilityErrors = httputil.NewErrorMapper().
	WithMapping(domain.ErrInvalidDate, http.StatusBadRequest, "invalid date").
	WithMapping(domain.ErrTenantNotFound, http.StatusNotFound, "tenant not found").
	WithMapping(domain.ErrUnknownProvider, http.StatusBadRequest, "unknown provider").
	WithMapping(domain.ErrMapping, http.StatusUnprocessableEntity, "mapping configuration error").
	WithMapping(domain.ErrIntegration, http.StatusBadGateway, "provider integration error")

// NewAvailabilityHandler exposes GET /api/v1/availability. The tenant id is
// accepted as tenantId or the older tenant parameter.
func NewAvailabilityHandler(availability *usecase.AvailabilityUseCase) func(echo.Context) error {
	return func(c echo.Context) error {
		requestID := uuid.NewString()
		c.Response().Header().Set("X-Request-Id", requestID)

		tenantID := strings.TrimSpace(c.QueryParam("tenantId"))
		if tenantID == "" {
			tenantID = strings.TrimSpace(c.QueryParam("tenant"))
		}
		start := strings.TrimSpace(c.QueryParam("start"))
		end := strings.TrimSpace(c.QueryParam("end"))

		if tenantID == "" || start == "" || end == "" {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: "missing required parameters: tenantId (or tenant), start, end",
			})
		}

		grid, err := availability.Execute(c.Request().Context(), usecase.AvailabilityInput{
			TenantID: tenantID,
			Start:    start,
			End:      end,
		})
		if err != nil {
			info := availabilityErrors.Map(err)
			slog.Error("availability request failed",
				slog.String("requestId", requestID),
				slog.String("tenantId", tenantID),
				slog.Int("status", info.Status),
				slog.Any("error", err),
			)
			return c.JSON(info.Status, errorResponse{Error: info.Message, Detail: err.Error()})
		}

		return c.JSON(http.StatusOK, grid)
	}
}

// NewHealthHandler reports process liveness.
func NewHealthHandler() func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
