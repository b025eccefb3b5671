package models

type Settings struct {
	ShopName string `json:"shopName"`
	ShopLogo string `json:"shopLogo"`
	// LowThreshold is the global fallback reorder point used by products
	// without one of their own.
	LowThreshold float64 `json:"lowThreshold"`
}

// SettingsPatch carries a field-level update; nil fields are left untouched.
type SettingsPatch struct {
	ShopName     *string  `json:"shopName"`
	ShopLogo     *string  `json:"shopLogo"`
	LowThreshold *float64 `json:"lowThreshold"`
}
