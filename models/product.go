package models

// Unit is a purchasable packaging variant of a product with its own price.
// Prices are VND, which has no minor unit.
type Unit struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	CategoryID   int      `json:"categoryId"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Manufacturer string   `json:"manufacturer"`
	Ingredients  string   `json:"ingredients"`
	Usage        string   `json:"usage"`
	Type         string   `json:"type"` // "kedon" (prescription) or "khongkedon"
	Units        []Unit   `json:"units"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
