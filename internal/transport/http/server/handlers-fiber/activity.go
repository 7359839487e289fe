package handlers_fiber

import (
	"fmt"
	"net/http"

	"school-activities/internal/api"
	"school-activities/internal/mapper"
	"school-activities/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// GetRoot redirects the browser to the static front-end.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
}

// GetActivities returns every activity keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	activities, err := h.uc.ListActivities(c.Context())
	if err != nil {
		h.log.Errorw("failed to list activities", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivities(activities))
}

// PostActivitySignup enrolls a participant in an activity.
func (h *Handler) PostActivitySignup(c *fiber.Ctx) error {
	name := activityParam(c)
	email := c.Query("email")

	act, err := h.uc.SignUp(c.Context(), name, email)
	if err != nil {
		metrics.Signups.WithLabelValues(name, "error").Inc()
		h.log.Infow("signup rejected", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err)
	}

	metrics.Signups.WithLabelValues(act.Name, "ok").Inc()
	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, act.Name),
	})
}

// DeleteActivityUnregister removes a participant from an activity.
func (h *Handler) DeleteActivityUnregister(c *fiber.Ctx) error {
	name := activityParam(c)
	email := c.Query("email")

	act, err := h.uc.Unregister(c.Context(), name, email)
	if err != nil {
		metrics.Unregistrations.WithLabelValues(name, "error").Inc()
		h.log.Infow("unregister rejected", "activity", name, "email", email, "error", err.Error())
		return writeError(c, err)
	}

	metrics.Unregistrations.WithLabelValues(act.Name, "ok").Inc()
	return c.Status(http.StatusOK).JSON(api.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, act.Name),
	})
}
