package middleware

import (
	"github.com/gofiber/fiber/v2"

	"fuelmarket/internal/service"
)

// ActorIDHeader carries the acting entity's ID, set by the upstream
// authentication layer. The gate trusts it; it does not authenticate.
const ActorIDHeader = "X-Actor-ID"

type gateCounter interface {
	CountGateDenied()
}

// RoleGate guards marketplace write routes: the acting entity must have a
// computed compliance status of approved (actor-level flag precedence
// included) before the request reaches the handler. Read routes are never
// gated; an actor can always inspect its own checklist.
func RoleGate(svc service.ComplianceService, metrics gateCounter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := c.Get(ActorIDHeader)
		if actorID == "" {
			return gateError(c, fiber.StatusUnauthorized, "ACTOR_REQUIRED", "acting entity is required")
		}

		status, err := svc.EvaluateActor(c.UserContext(), actorID)
		if err != nil {
			if err == service.ErrNotFound {
				return gateError(c, fiber.StatusUnauthorized, "ACTOR_NOT_FOUND", "acting entity not found")
			}
			return gateError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if !status.CanAccessPlatform {
			if metrics != nil {
				metrics.CountGateDenied()
			}
			return gateError(c, fiber.StatusForbidden, "COMPLIANCE_REQUIRED", "compliance review incomplete")
		}

		return c.Next()
	}
}

// gateError mirrors the handler package's error envelope; duplicated here
// to keep middleware free of a handler import.
func gateError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}
