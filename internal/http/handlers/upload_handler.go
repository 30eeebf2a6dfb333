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

type UploadHandler struct {
	Listings *services.ListingService
}

func (h *UploadHandler) Form(c *fiber.Ctx) error {
	return render(c, "upload", fiber.Map{"Types": domain.PropertyTypes(), "Err": ""})
}

// Submit runs the upload workflow. Quota and image errors re-render the form;
// description-generation failure is absorbed inside the service.
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	u, _ := c.Locals("user").(*domain.User)

	title, ok := validate.Title(c.FormValue("title"))
	if !ok {
		return h.formErr(c, "Enter a listing title")
	}
	ptype := strings.TrimSpace(c.FormValue("type"))
	if !domain.ValidPropertyType(ptype) {
		log.Security(c, "validation.fail", map[string]any{"field": "type", "value": ptype})
		return h.formErr(c, "Invalid property type")
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return h.formErr(c, "Enter a non-negative price")
	}
	location := strings.TrimSpace(c.FormValue("location"))
	features := strings.TrimSpace(c.FormValue("features"))
	images := splitImageLines(c.FormValue("images"))

	draft := services.ListingDraft{
		Title:     title,
		Type:      ptype,
		Price:     price,
		Location:  location,
		Features:  features,
		ImageURLs: images,
	}

	p, err := h.Listings.Upload(c.Context(), sid, u, draft)
	switch {
	case errors.Is(err, services.ErrQuotaExceeded):
		return h.formErr(c, "Maximum 5 properties allowed per seller.")
	case errors.Is(err, services.ErrMissingImages):
		return h.formErr(c, "Attach at least one image.")
	case errors.Is(err, services.ErrUploadInFlight):
		return h.formErr(c, "Your previous listing is still being published.")
	case err != nil:
		log.Error(c, "listing.upload.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not publish listing. Please retry."})
	}

	log.Audit(c, "listing.upload", map[string]any{"property_id": p.ID, "type": p.Type})
	return c.Redirect("/")
}

func (h *UploadHandler) formErr(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).Render("upload", fiber.Map{
		"Types": domain.PropertyTypes(), "Err": msg,
		"CSRFToken": c.Cookies("csrf_"),
	})
}

// splitImageLines parses the one-URL-per-line images field.
func splitImageLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
