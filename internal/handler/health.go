package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/choice-battle/backend/internal/middleware"
	"github.com/choice-battle/backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler reports whether the API and its dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth returns 200 when every configured check passes and 503
// when the database is unreachable. An unreachable Redis is reported
// but does not fail the check: the API runs without it.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	checks := h.server.Config.Observability.HealthChecks

	if checks.Runs("database") && h.server.DB != nil {
		result := h.check(c.Request().Context(), &logger, "database", checks.Timeout, h.server.DB.Pool.Ping)
		response.Checks["database"] = result
		if result.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if checks.Runs("redis") && h.server.Redis != nil {
		response.Checks["redis"] = h.check(c.Request().Context(), &logger, "redis", checks.Timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthError("overall", "overall_unhealthy", time.Since(start), nil)

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		h.recordHealthError("response", "json_response_error", time.Since(start), err)
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) check(
	ctx context.Context,
	logger *zerolog.Logger,
	name string,
	timeout time.Duration,
	ping func(context.Context) error,
) checkResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordHealthError(name, name+"_unhealthy", elapsed, err)

		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
}

// recordHealthError sends a HealthCheckError custom event to New Relic.
func (h *HealthHandler) recordHealthError(checkType, errorType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	event := map[string]any{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		event["error_message"] = err.Error()
	}

	app.RecordCustomEvent("HealthCheckError", event)
}
