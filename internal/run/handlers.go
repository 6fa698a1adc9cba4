package run

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, mgr *Manager, authMiddleware fiber.Handler) {
	r.Post("/start", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		result, err := mgr.StartRun(c.Context(), body.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	r.Post("/update", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			RunID     string  `json:"run_id"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		if err := c.BodyParser(&body); err != nil || body.RunID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "run_id required")
		}
		if !validCoordinate(body.Latitude, body.Longitude) {
			return fiber.NewError(fiber.StatusBadRequest, "latitude must be in [-90,90] and longitude in [-180,180]")
		}
		result, err := mgr.IngestLocation(c.Context(), body.RunID, body.Latitude, body.Longitude)
		if err != nil {
			return fiber.NewError(statusFromErr(err), err.Error())
		}
		return c.JSON(result)
	})

	r.Post("/stop", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			RunID string `json:"run_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.RunID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "run_id required")
		}
		result, err := mgr.StopRun(c.Context(), body.RunID)
		if err != nil {
			return fiber.NewError(statusFromErr(err), err.Error())
		}
		return c.JSON(result)
	})

	r.Post("/cancel", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			RunID string `json:"run_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.RunID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "run_id required")
		}
		result, err := mgr.CancelRun(c.Context(), body.RunID)
		if err != nil {
			return fiber.NewError(statusFromErr(err), err.Error())
		}
		return c.JSON(result)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		s, err := mgr.GetRun(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(statusFromErr(err), err.Error())
		}
		return c.JSON(s)
	})
}

// validCoordinate rejects malformed fixes at the boundary; the session
// itself assumes validated numeric input.
func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func statusFromErr(err error) int {
	switch {
	case errors.Is(err, ErrRunNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
