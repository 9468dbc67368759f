package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/flight-service/internal/api/dto"
	"github.com/spec-kit/flight-service/internal/service"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

// AirportsHandler exposes airport CRUD endpoints.
type AirportsHandler struct {
	airports *service.AirportService
}

// NewAirportsHandler constructs handler.
func NewAirportsHandler(airportService *service.AirportService) *AirportsHandler {
	return &AirportsHandler{airports: airportService}
}

// Create handles POST /api/v1/airports.
func (h *AirportsHandler) Create(c *fiber.Ctx) error {
	var req dto.AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	airport, err := h.airports.Create(c.UserContext(), service.AirportInput{
		Name:     req.Name,
		CityName: req.CityName,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAirportResponse(airport)})
}

// GetByID handles GET /api/v1/airports/:id.
func (h *AirportsHandler) GetByID(c *fiber.Ctx) error {
	airport, err := h.airports.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAirportResponse(airport)})
}

// List handles GET /api/v1/airports.
func (h *AirportsHandler) List(c *fiber.Ctx) error {
	var query dto.PagingQuery
	if err := c.QueryParser(&query); err != nil {
		return apperrors.NewValidationError("invalid paging parameters", nil)
	}

	airports, info, err := h.airports.List(c.UserContext(), query.ToPageRequest())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewPagingResponse(dto.NewAirportResponses(airports), info)})
}

// Update handles PUT /api/v1/airports/:id.
func (h *AirportsHandler) Update(c *fiber.Ctx) error {
	var req dto.AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	airport, err := h.airports.Update(c.UserContext(), c.Params("id"), service.AirportInput{
		Name:     req.Name,
		CityName: req.CityName,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NewAirportResponse(airport)})
}

// Delete handles DELETE /api/v1/airports/:id.
func (h *AirportsHandler) Delete(c *fiber.Ctx) error {
	if err := h.airports.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "airport deleted"}})
}
