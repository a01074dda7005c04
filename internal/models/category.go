package models

type Category struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// Categories es la tabla fija de categorías del catálogo. Los productos
// guardan solo el slug; la etiqueta se resuelve al mostrar.
var Categories = []Category{
	{Label: "Skincare", Slug: "skincare"},
	{Label: "Maquillaje", Slug: "maquillaje"},
	{Label: "Rostro", Slug: "rostro"},
	{Label: "Ojos", Slug: "ojos"},
	{Label: "Labios", Slug: "labios"},
	{Label: "Cabello", Slug: "cabello"},
	{Label: "Fragancias", Slug: "fragancias"},
	{Label: "Cuidado Corporal", Slug: "cuidado-corporal"},
}

// CategoryLabel devuelve la etiqueta visible de un slug, o el slug mismo
// si no está en la tabla.
func CategoryLabel(slug string) string {
	for _, c := range Categories {
		if c.Slug == slug {
			return c.Label
		}
	}
	return slug
}
