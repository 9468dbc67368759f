package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/flight-service/internal/api/dto"
	"github.com/spec-kit/flight-service/internal/service"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

// FlightsHandler exposes flight CRUD endpoints.
type FlightsHandler struct {
	flights *service.FlightService
}

// NewFlightsHandler constructs handler.
func NewFlightsHandler(flightService *service.FlightService) *FlightsHandler {
	return &FlightsHandler{flights: flightService}
}

// Create handles POST /api/v1/flights.
func (h *FlightsHandler) Create(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FromAirportID == "" || req.ToAirportID == "" {
		return apperrors.NewValidationError("from_airport_id and to_airport_id required", nil)
	}
	if req.DepartureTime.IsZero() || req.ArrivalTime.IsZero() {
		return apperrors.NewValidationError("departure_time and arrival_time required", nil)
	}

	flight, err := h.flights.Create(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFlightResponse(flight)})
}

// GetByID handles GET /api/v1/flights/:id.
func (h *FlightsHandler) GetByID(c *fiber.Ctx) error {
	flight, err := h.flights.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFlightResponse(flight)})
}

// List handles GET /api/v1/flights.
func (h *FlightsHandler) List(c *fiber.Ctx) error {
	var query dto.PagingQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid paging parameters", nil)
	}

	flights, info, err := h.flights.List(c.UserContext(), query.ToPageRequest())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewPagingResponse(dto.NewFlightResponses(flights), info)})
}

// Update handles PUT /api/v1/flights/:id.
func (h *FlightsHandler) Update(c *fiber.Ctx) error {
	var req dto.FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	flight, err := h.flights.Update(c.UserContext(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewFlightResponse(flight)})
}

// Delete handles DELETE /api/v1/flights/:id.
func (h *FlightsHandler) Delete(c *fiber.Ctx) error {
	if err := h.flights.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "flight deleted"}})
}
