// Package web embeds the single-page browser client. The client is a pure
// consumer of the JSON API; it keeps no state beyond the bearer token.
package web

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var indexHTML []byte

// RegisterClient serves the embedded client at the root path.
func RegisterClient(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(indexHTML)
	})
}
