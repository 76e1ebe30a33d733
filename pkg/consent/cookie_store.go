package consent

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieMaxAge matches the banner's one year retention.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStore reads consent from the request cookies of a single request.
type CookieStore struct {
	ctx *fiber.Ctx
}

func NewCookieStore(ctx *fiber.Ctx) *CookieStore {
	return &CookieStore{ctx: ctx}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if s.ctx == nil {
		return "", false
	}
	if v := s.ctx.Cookies(key); v != "" {
		return v, true
	}
	return "", false
}

// FromRequest builds a Gate bound to the request cookies.
func FromRequest(ctx *fiber.Ctx) *Gate {
	return NewGate(NewCookieStore(ctx))
}
