package handlers_fiber

import (
	"errors"
	"net/http"
	"net/url"

	"school-activities/internal/api"
	"school-activities/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// writeError maps domain errors to the HTTP error contract. Detail phrases
// are matched by substring in existing clients and must not change.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	detail := "internal error"

	switch {
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		detail = "activity not found"
	case errors.Is(err, entities.ErrAlreadySignedUp):
		status = http.StatusBadRequest
		detail = "already signed up for this activity"
	case errors.Is(err, entities.ErrActivityFull):
		status = http.StatusBadRequest
		detail = "activity is full"
	case errors.Is(err, entities.ErrNotSignedUp):
		status = http.StatusBadRequest
		detail = "not signed up for this activity"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		detail = err.Error()
	default:
		detail = err.Error()
	}

	return c.Status(status).JSON(api.ErrorResponse{Detail: detail})
}

// activityParam returns the :name path segment. Activity names contain
// spaces, so the segment arrives percent-encoded.
func activityParam(c *fiber.Ctx) string {
	raw := c.Params("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}
