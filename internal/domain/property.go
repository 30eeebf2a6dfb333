package domain

import "encoding/json"

// Property types mirror the fixed sale/rent categories offered on the site.
const (
	TypeHouseSale     = "HOUSE_SALE"
	TypeLandSale      = "LAND_SALE"
	TypeWarehouseSale = "WAREHOUSE_SALE"
	TypeApartmentRent = "APARTMENT_RENT"
	TypeHouseRent     = "HOUSE_RENT"
)

// TabAll is the browse-tab sentinel that selects every listing.
const TabAll = "all"

// tabTypes maps browse-tab tags to property types.
var tabTypes = map[string]string{
	"houses_sale":    TypeHouseSale,
	"land_sale":      TypeLandSale,
	"warehouse_sale": TypeWarehouseSale,
	"apartment_rent": TypeApartmentRent,
	"houses_rent":    TypeHouseRent,
}

// TypeForTab resolves a browse tab to its property type.
// The "all" sentinel has no type; ok is false for it and for unknown tabs.
func TypeForTab(tab string) (string, bool) {
	t, ok := tabTypes[tab]
	return t, ok
}

// PropertyTypes lists every valid property type in display order.
func PropertyTypes() []string {
	return []string{TypeHouseSale, TypeLandSale, TypeWarehouseSale, TypeApartmentRent, TypeHouseRent}
}

// ValidPropertyType reports whether t is one of the fixed property types.
func ValidPropertyType(t string) bool {
	switch t {
	case TypeHouseSale, TypeLandSale, TypeWarehouseSale, TypeApartmentRent, TypeHouseRent:
		return true
	}
	return false
}

type Property struct {
	ID             string  `db:"id"`
	Title          string  `db:"title"`
	Description    string  `db:"description"`
	Price          float64 `db:"price"`
	Location       string  `db:"location"`
	Type           string  `db:"type"`
	ImagesJSON     string  `db:"images_json"`
	SellerID       string  `db:"seller_id"`
	SellerName     string  `db:"seller_name"`
	SellerPhone    string  `db:"seller_phone"`
	SellerEmail    string  `db:"seller_email"`
	SellerWhatsApp string  `db:"seller_whatsapp"`
	CreatedAt      int64   `db:"created_at"` // unix millis
}

// Images decodes the stored image URL list. A listing always has at least one
// image; a decode failure yields an empty slice rather than an error.
func (p Property) Images() []string {
	var urls []string
	_ = json.Unmarshal([]byte(p.ImagesJSON), &urls)
	return urls
}

// MainImage returns the first image URL, or "" when none decode.
func (p Property) MainImage() string {
	urls := p.Images()
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// EncodeImages serializes an image URL list for storage.
func EncodeImages(urls []string) string {
	b, _ := json.Marshal(urls)
	return string(b)
}
