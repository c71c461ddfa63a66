package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("1234567890"))
	assert.True(t, ValidIdentifier("9781234567897"))
	assert.True(t, ValidIdentifier("978-1-234-56789-7"))
	assert.False(t, ValidIdentifier("123456789"))
	assert.False(t, ValidIdentifier("12345678901"))
	assert.False(t, ValidIdentifier("abcdefghij"))
	assert.False(t, ValidIdentifier(""))
}

func TestUpsertBookRequestValidate(t *testing.T) {
	base := UpsertBookRequest{
		Identifier: "9781234567897",
		Title:      "Cien años de soledad",
		Price:      15000,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})

	t.Run("price below minimum", func(t *testing.T) {
		req := base
		req.Price = 999
		assert.Error(t, req.Validate())
	})

	t.Run("price at minimum", func(t *testing.T) {
		req := base
		req.Price = 1000
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := base
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("bad identifier", func(t *testing.T) {
		req := base
		req.Identifier = "123"
		assert.Error(t, req.Validate())
	})
}

func TestCategoriesRoundTrip(t *testing.T) {
	cats := []string{"Novela", "Clásicos"}
	assert.Equal(t, cats, SplitCategories(JoinCategories(cats)))
	assert.Nil(t, SplitCategories(""))
}
