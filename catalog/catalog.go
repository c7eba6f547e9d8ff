package catalog

import "pharmahub/models"

// Products returns the full catalog.
func Products() []models.Product {
	return products
}

// Categories returns all product categories.
func Categories() []models.Category {
	return categories
}

// ProductByID resolves a product, reporting whether it exists.
func ProductByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Unit resolves the unit of a product by name. Cart and order lines must
// reference a unit that exists here at write time.
func Unit(productID int, unitName string) (models.Unit, bool) {
	p, ok := ProductByID(productID)
	if !ok {
		return models.Unit{}, false
	}
	for _, u := range p.Units {
		if u.Name == unitName {
			return u, true
		}
	}
	return models.Unit{}, false
}
