package handlers

import (
	"wealthestate/internal/log"
	"wealthestate/internal/repos"
	"wealthestate/internal/services"
	"wealthestate/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	Listings *services.ListingService
	Ads      *repos.AdRepo
}

// Home renders the browse page for the selected category tab.
func (h *ListingHandler) Home(c *fiber.Ctx) error {
	tab := c.Query("tab", "all")
	props, err := h.Listings.Browse(tab)
	if err != nil {
		log.Error(c, "listings.browse.fail", err, map[string]any{"tab": tab})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load listings. Please retry."})
	}
	ads, err := h.Ads.ListActive()
	if err != nil {
		log.Error(c, "ads.list.fail", err, nil)
		ads = nil // sidebar is decorative; the listings page still renders
	}
	return render(c, "home", fiber.Map{
		"Tab":        tab,
		"Properties": props,
		"Count":      len(props),
		"Ads":        ads,
	})
}

func (h *ListingHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "property"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This property is no longer available"})
	}
	p, err := h.Listings.Get(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This property is no longer available"})
	}
	return render(c, "property", fiber.Map{"P": p})
}
