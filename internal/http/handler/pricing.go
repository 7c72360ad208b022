package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fuelmarket/internal/pricing"
	"fuelmarket/internal/service"
)

// ListTiers returns a fuel type's price tiers with display range labels.
// @Summary List price tiers for a fuel type
// @Router /fuel-types/{id}/tiers [get]
func ListTiers(svc service.PricingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fuelTypeID := c.Params("id")
		res, err := svc.ListTiers(c.UserContext(), fuelTypeID)
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "fuel type id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// QuoteVolume resolves the applicable price for a requested volume.
// @Summary Quote a price for a requested volume
// @Router /fuel-types/{id}/quote [get]
func QuoteVolume(svc service.PricingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fuelTypeID := c.Params("id")
		volumeStr := c.Query("volume")
		volume, err := strconv.ParseFloat(volumeStr, 64)
		if err != nil || volume < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_VOLUME", "invalid volume")
		}

		res, err := svc.Quote(c.UserContext(), fuelTypeID, volume)
		if err != nil {
			if errors.Is(err, pricing.ErrNoTiersConfigured) {
				return writeError(c, fiber.StatusNotFound, "FUEL_TYPE_UNAVAILABLE", "no pricing configured for this fuel type")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// CreateTier persists a new price tier for a fuel type.
// @Summary Create a price tier
// @Router /fuel-types/{id}/tiers [post]
func CreateTier(svc service.PricingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateTierInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		in.FuelTypeID = c.Params("id")

		tier, err := svc.CreateTier(c.UserContext(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "fuel type id is required")
			case errors.Is(err, service.ErrInvalidPrice):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PRICE", "price per unit must be positive")
			case errors.Is(err, service.ErrDuplicateMinVolume):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_MIN_VOLUME", "a tier with this minimum volume already exists")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(tier)
	}
}

// DeleteTier removes a price tier by ID.
// @Summary Delete a price tier
// @Router /tiers/{id} [delete]
func DeleteTier(svc service.PricingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteTier(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "tier not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
