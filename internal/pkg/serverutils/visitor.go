package serverutils

import (
	"context"

	"stratigo-site/pkg/analytics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// VisitorCookie holds the anonymous analytics client id. It is only set
// after the visitor accepts analytics.
const VisitorCookie = "stratigo_vid"

// AnalyticsContext returns the request context carrying the visitor's client id.
func AnalyticsContext(ctx *fiber.Ctx) context.Context {
	base := ctx.UserContext()
	if id := ctx.Cookies(VisitorCookie); id != "" {
		return analytics.WithClientID(base, utils.CopyString(id))
	}
	return base
}
