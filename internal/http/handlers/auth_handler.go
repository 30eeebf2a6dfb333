package handlers

import (
	"strings"
	"time"

	"wealthestate/internal/log"
	"wealthestate/internal/services"
	"wealthestate/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": tok})
}

// Login signs a session in. This is a demo flow: only a fully empty email is
// turned away; any email/password pair succeeds and the fixed admin pair
// lands in the admin panel.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := strings.TrimSpace(c.FormValue("email"))
	pass := c.FormValue("password")
	if email == "" {
		tok := c.Cookies("csrf_")
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{"Err": "Email is required", "CSRFToken": tok})
	}
	if _, ok := validate.Email(email); !ok {
		// Logged for visibility only; demo sign-in still proceeds.
		log.Security(c, "auth.login.odd_email", map[string]any{"email": email})
	}

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Error(c, "auth.login.fail", err, map[string]any{"email": email})
		tok := c.Cookies("csrf_")
		return c.Status(fiber.StatusInternalServerError).Render("login", fiber.Map{"Err": "Could not sign in. Please retry.", "CSRFToken": tok})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email, "role": u.Role})
	if u.IsAdmin() {
		return c.Redirect("/admin")
	}
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
