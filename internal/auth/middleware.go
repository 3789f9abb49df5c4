package auth

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsUserID = "user_id"

// publicPaths never require a session. Everything else redirects to the
// login page when no valid session cookie is present.
var publicPaths = map[string]struct{}{
	"/":               {},
	"/login":          {},
	"/signup":         {},
	"/auth/signup":    {},
	"/auth/login":     {},
	"/stripe/webhook": {},
	"/health":         {},
	"/healthz":        {},
}

// SessionGate inspects the session cookie on every request. Unauthenticated
// access to a non-public route redirects to /login with a next parameter
// carrying the originally requested path; authenticated users are bounced
// away from the login and signup pages.
func SessionGate(sessions *Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if p := strings.TrimSuffix(path, "/"); p != "" {
			path = p
		}

		_, public := publicPaths[path]

		userID := ""
		if cookie := c.Cookies(CookieName); cookie != "" {
			if uid, err := sessions.Parse(cookie); err == nil {
				userID = uid
			}
		}

		if userID == "" {
			if public {
				return c.Next()
			}
			return c.Redirect("/login?next="+url.QueryEscape(c.Path()), fiber.StatusFound)
		}

		c.Locals(localsUserID, userID)

		if path == "/login" || path == "/signup" {
			next := c.Query("next")
			if next == "" || !strings.HasPrefix(next, "/") {
				next = "/"
			}
			return c.Redirect(next, fiber.StatusFound)
		}

		return c.Next()
	}
}

// UserID returns the authenticated user ID stored by SessionGate.
func UserID(c *fiber.Ctx) (string, error) {
	val := c.Locals(localsUserID)
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", errors.New("user id missing")
}
