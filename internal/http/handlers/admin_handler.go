package handlers

import (
	applog "wealthestate/internal/log"
	"wealthestate/internal/repos"
	"wealthestate/internal/services"
	"wealthestate/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Listings *services.ListingService
	Ads      *repos.AdRepo
}

// GET /admin
func (h *AdminHandler) ListingsPage(c *fiber.Ctx) error {
	props, err := h.Listings.Browse("all")
	if err != nil {
		applog.Error(c, "admin.listings.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load listings"})
	}
	return render(c, "admin_listings", fiber.Map{"Properties": props})
}

// POST /admin/listings/:id/delete
// The confirmation step lives in the template; the backing removal treats an
// absent id as a no-op.
func (h *AdminHandler) DeleteListing(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Listings.Delete(id); err != nil {
		applog.Error(c, "admin.listings.delete.fail", err, map[string]any{"property_id": id})
		return c.Status(400).SendString("could not delete listing")
	}
	applog.Audit(c, "admin.listings.delete", map[string]any{"property_id": id})
	return c.Redirect("/admin")
}

// GET /admin/ads
func (h *AdminHandler) AdsPage(c *fiber.Ctx) error {
	ads, err := h.Ads.List()
	if err != nil {
		applog.Error(c, "admin.ads.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load ads"})
	}
	return render(c, "admin_ads", fiber.Map{"Ads": ads})
}

// POST /admin/ads/:id/toggle
func (h *AdminHandler) ToggleAd(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Ads.Toggle(id); err != nil {
		applog.Error(c, "admin.ads.toggle.fail", err, map[string]any{"ad_id": id})
		return c.Status(400).SendString("could not toggle ad")
	}
	applog.Audit(c, "admin.ads.toggle", map[string]any{"ad_id": id})
	return c.Redirect("/admin/ads")
}
