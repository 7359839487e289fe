package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists the handlers the HTTP surface requires.
type ServerInterface interface {
	GetRoot(c *fiber.Ctx) error
	GetActivities(c *fiber.Ctx) error
	PostActivitySignup(c *fiber.Ctx) error
	DeleteActivityUnregister(c *fiber.Ctx) error
}

// RegisterHandlers binds the API routes on the Fiber app. Verbs and paths
// are fixed for compatibility with existing clients.
func RegisterHandlers(app *fiber.App, si ServerInterface) {
	app.Get("/", si.GetRoot)
	app.Get("/activities", si.GetActivities)
	app.Post("/activities/:name/signup", si.PostActivitySignup)
	app.Delete("/activities/:name/unregister", si.DeleteActivityUnregister)
}
