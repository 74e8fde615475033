// Package guard enforces the three route classes: public, authenticated-only
// and guest-only.
package guard

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/anrokk/SportMap-Client/internal/credstore"
)

type Requirement int

const (
	Public Requirement = iota
	RequiresAuth
	RequiresGuest
)

type Action int

const (
	Allow Action = iota
	RedirectLogin
	RedirectMap
)

// Decide is the pure navigation decision, evaluated before every route.
func Decide(requirement Requirement, authenticated bool) Action {
	switch {
	case requirement == RequiresAuth && !authenticated:
		return RedirectLogin
	case requirement == RequiresGuest && authenticated:
		return RedirectMap
	default:
		return Allow
	}
}

// Session is the slice of the auth store the guard depends on.
type Session interface {
	IsAuthenticated() bool
	InitializeFromStorage(ctx context.Context)
}

// Middleware applies Decide to incoming requests. An anonymous session with
// a persisted token gets one restoration attempt before the decision; a
// login redirect carries the originally intended path as a return target.
func Middleware(requirement Requirement, session Session, creds credstore.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !session.IsAuthenticated() {
			if _, err := creds.Get(c.Context(), credstore.TokenKey); err == nil {
				session.InitializeFromStorage(c.Context())
			}
		}

		switch Decide(requirement, session.IsAuthenticated()) {
		case RedirectLogin:
			return c.Redirect("/login?redirect="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		case RedirectMap:
			return c.Redirect("/map", fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}
