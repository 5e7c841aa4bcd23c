package controller

import (
	"time"

	"agromarket-api/internal/service"
	"agromarket-api/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	handler.Use(requestLoggerMiddleware)

	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newProductRoutesHandler(api, services, validate)
	newBidRoutesHandler(api, services, validate)
	newNotificationRoutesHandler(api, services, validate)
	newAdminRoutesHandler(api, services, validate)
}

// requestLoggerMiddleware logs every request with timing.
func requestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		logger.Info("HTTP Request", map[string]any{
			"method":  c.Request().Method,
			"path":    c.Request().URL.Path,
			"status":  c.Response().Status,
			"latency": time.Since(start).String(),
		})

		return err
	}
}
