package models

// Companies is the default set offered when cataloguing a product. Free-text
// company names are accepted as well; this list only drives suggestions.
var Companies = []string{"Kazi", "Nahar", "Paragon", "Aftab", "CP", "Mega", "Other"}

type Product struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Cost    float64 `json:"cost"`
	Price   float64 `json:"price"`
	// Stock is a real quantity (kilograms); it is mutated only by sale
	// recording and stock additions.
	Stock float64 `json:"stock"`
	// Threshold is the per-product reorder point. Zero means "use the
	// global low-stock threshold from settings".
	Threshold float64 `json:"threshold"`
}

// ProductPatch carries a field-level update; nil fields are left untouched.
type ProductPatch struct {
	Name      *string  `json:"name"`
	Company   *string  `json:"company"`
	Cost      *float64 `json:"cost"`
	Price     *float64 `json:"price"`
	Stock     *float64 `json:"stock"`
	Threshold *float64 `json:"threshold"`
}
