package handlers

import (
	"errors"
	"strings"

	"wealthestate/internal/domain"
	"wealthestate/internal/log"
	"wealthestate/internal/services"
	"wealthestate/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type RegisterHandler struct {
	Register *services.RegisterService
}

func (h *RegisterHandler) Form(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

// Begin collects the draft profile and moves the session to the verification
// step. The code is rendered back to the same session, simulating an SMS or
// email delivery.
func (h *RegisterHandler) Begin(c *fiber.Ctx) error {
	sid := ensureSID(c)

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Enter your full name", "CSRFToken": c.Cookies("csrf_")})
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Enter a valid email address", "CSRFToken": c.Cookies("csrf_")})
	}
	role := strings.TrimSpace(c.FormValue("role"))
	if role != domain.RoleSeller && role != domain.RoleAgent {
		role = domain.RoleSeller
	}

	draft := services.RegistrationDraft{
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(c.FormValue("phone")),
		Role:          role,
		PaymentMethod: strings.TrimSpace(c.FormValue("payment_method")),
		BankAccount:   strings.TrimSpace(c.FormValue("bank_account")),
	}
	code := h.Register.Begin(sid, draft)

	log.Audit(c, "register.begin", map[string]any{"email": email})
	return render(c, "register_verify", fiber.Map{"Code": code, "Err": ""})
}

// Verify promotes the pending draft on an exact code match. A mismatch keeps
// the session in the verification step for another attempt.
func (h *RegisterHandler) Verify(c *fiber.Ctx) error {
	sid := ensureSID(c)
	code, ok := validate.Code(c.FormValue("code"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("register_verify", fiber.Map{
			"Err": "Enter the 6-digit code", "CSRFToken": c.Cookies("csrf_"),
		})
	}

	u, err := h.Register.Verify(sid, code)
	switch {
	case errors.Is(err, services.ErrNoPendingRegistration):
		return c.Redirect("/register")
	case errors.Is(err, services.ErrInvalidCode):
		log.Security(c, "register.verify.fail", map[string]any{"sid": sid})
		return c.Status(fiber.StatusUnauthorized).Render("register_verify", fiber.Map{
			"Err": "Invalid verification code!", "CSRFToken": c.Cookies("csrf_"),
		})
	case err != nil:
		log.Error(c, "register.verify.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not complete registration. Please retry."})
	}

	log.Audit(c, "register.verified", map[string]any{"user_id": u.ID})
	return c.Redirect("/")
}

// Cancel drops the pending registration and returns to the browse page.
func (h *RegisterHandler) Cancel(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Register.Cancel(sid)
	return c.Redirect("/")
}
