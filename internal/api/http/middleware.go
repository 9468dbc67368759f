package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/flight-service/internal/auth"
	"github.com/spec-kit/flight-service/internal/observability"
	"github.com/spec-kit/flight-service/internal/revocation"
	"github.com/spec-kit/flight-service/internal/service"
	"github.com/spec-kit/flight-service/internal/token"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(translateError(err))
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// translateError maps sentinel errors from the token, auth and service layers
// to the structured response envelope. Everything in the auth taxonomy
// collapses to 401 externally; distinct codes are kept for diagnostics.
func translateError(err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		return apperrors.NewDomainError("TOKEN_EXPIRED", "token has expired", http.StatusUnauthorized, nil)
	case errors.Is(err, token.ErrMalformedToken), errors.Is(err, token.ErrSignatureInvalid):
		return apperrors.NewUnauthorized("invalid token")
	case errors.Is(err, token.ErrTokenTypeMismatch):
		return apperrors.NewDomainError("TOKEN_TYPE_MISMATCH", "wrong token type for this operation", http.StatusUnauthorized, nil)
	case errors.Is(err, auth.ErrTokenRevoked):
		return apperrors.NewDomainError("TOKEN_REVOKED", "token has been revoked", http.StatusUnauthorized, nil)
	case errors.Is(err, service.ErrTokenAlreadyInvalid):
		return apperrors.NewDomainError("TOKEN_ALREADY_INVALID", "token already invalidated", http.StatusBadRequest, nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewUnauthorized("invalid credentials")
	case errors.Is(err, service.ErrUserSuspended):
		return apperrors.NewForbidden("account suspended")
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return apperrors.NewConflict("email already registered", nil)
	case errors.Is(err, service.ErrAirportAlreadyExists):
		return apperrors.NewConflict("airport already exists", nil)
	case errors.Is(err, service.ErrAirportNotFound):
		return apperrors.NewNotFound("airport", nil)
	case errors.Is(err, service.ErrFlightNotFound):
		return apperrors.NewNotFound("flight", nil)
	case errors.Is(err, service.ErrUnknownAirport),
		errors.Is(err, service.ErrSameAirports),
		errors.Is(err, service.ErrArrivalBeforeDeparture),
		errors.Is(err, service.ErrInvalidPrice):
		return apperrors.NewValidationError(err.Error(), nil)
	case errors.Is(err, revocation.ErrUnavailable):
		return apperrors.NewUnavailable("authorization temporarily unavailable", err)
	case errors.As(err, &fiberErr):
		return apperrors.NewDomainError("REQUEST_FAILED", fiberErr.Message, fiberErr.Code, nil)
	default:
		return err
	}
}
