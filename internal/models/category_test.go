package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Labios", CategoryLabel("labios"))
	assert.Equal(t, "Cuidado Corporal", CategoryLabel("cuidado-corporal"))
	// un slug desconocido se devuelve tal cual
	assert.Equal(t, "unas", CategoryLabel("unas"))
}

func TestCategorySlugs(t *testing.T) {
	t.Run("lista actual", func(t *testing.T) {
		p := Product{Categories: []string{"labios", "rostro"}}
		assert.Equal(t, []string{"labios", "rostro"}, p.CategorySlugs())
	})

	t.Run("documento antiguo con categoría embebida", func(t *testing.T) {
		p := Product{LegacyCategory: &LegacyCategory{Name: "Labios", Slug: "labios"}}
		assert.Equal(t, []string{"labios"}, p.CategorySlugs())
	})

	t.Run("la lista gana sobre la forma antigua", func(t *testing.T) {
		p := Product{
			Categories:     []string{"rostro"},
			LegacyCategory: &LegacyCategory{Name: "Labios", Slug: "labios"},
		}
		assert.Equal(t, []string{"rostro"}, p.CategorySlugs())
	})

	t.Run("sin categorías", func(t *testing.T) {
		var p Product
		assert.Nil(t, p.CategorySlugs())
	})
}
