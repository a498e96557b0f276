package catalog

import (
	"testing"

	"catalog-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticID() string { return "generated-id" }

func TestRow_Product_FullRow(t *testing.T) {
	row := Row{"id": "p1", "title": "Widget", "description": "small", "price": "9.99"}

	product, err := row.Product(staticID)

	require.NoError(t, err)
	assert.Equal(t, Product{ID: "p1", Title: "Widget", Description: "small", Price: 9.99}, product)
}

func TestRow_Product_GeneratesMissingID(t *testing.T) {
	row := Row{"title": "Widget", "price": "9.99"}

	product, err := row.Product(staticID)

	require.NoError(t, err)
	assert.Equal(t, "generated-id", product.ID)
}

func TestRow_Product_TrimsWhitespace(t *testing.T) {
	row := Row{"id": " p1 ", "title": " Widget ", "price": " 9.99 "}

	product, err := row.Product(staticID)

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Widget", product.Title)
	assert.Equal(t, 9.99, product.Price)
}

func TestRow_Product_EmptyTitle(t *testing.T) {
	row := Row{"title": "  ", "price": "9.99"}

	_, err := row.Product(staticID)

	assert.True(t, errors.IsValidation(err))
}

func TestRow_Product_PriceNotANumber(t *testing.T) {
	row := Row{"title": "Widget", "price": "cheap"}

	_, err := row.Product(staticID)

	assert.True(t, errors.IsValidation(err))
}

func TestRow_Product_MissingPrice(t *testing.T) {
	row := Row{"title": "Widget"}

	_, err := row.Product(staticID)

	assert.True(t, errors.IsValidation(err))
}

func TestRow_Product_NegativePrice(t *testing.T) {
	row := Row{"title": "Widget", "price": "-1"}

	_, err := row.Product(staticID)

	assert.True(t, errors.IsValidation(err))
}
