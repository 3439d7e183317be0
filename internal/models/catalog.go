package models

// Product represents a catalog product. JSON field names follow the
// store API wire format.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Slug        string   `json:"slug"`
	Description string   `json:"descripcion,omitempty"`
	Price       int      `json:"precio"` // in whole pesos
	Images      []string `json:"imagenes,omitempty"`
	CategoryID  string   `json:"categoriaId,omitempty"`
	Variants    []string `json:"variantes,omitempty"` // print colors/materials
	Stock       int      `json:"stock"`
	Featured    bool     `json:"destacado"`
	Active      bool     `json:"activo"`
}

// HasVariant reports whether the given variant is offered for the product.
// Products without variants accept only the empty variant.
func (p *Product) HasVariant(variant string) bool {
	if len(p.Variants) == 0 {
		return variant == ""
	}
	for _, v := range p.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// MainImage returns the first product image, or empty when none exist
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Category represents a product category
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Slug   string `json:"slug"`
	Active bool   `json:"activo"`
}

// Banner represents a hero slider banner on the storefront home page
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"titulo"`
	Subtitle string `json:"subtitulo,omitempty"`
	Image    string `json:"imagen"`
	Link     string `json:"link,omitempty"`
	Position int    `json:"orden"`
	Active   bool   `json:"activo"`
}
