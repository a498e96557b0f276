package catalog

import (
	"strconv"
	"strings"

	"catalog-backend/pkg/errors"
)

// Row is one line of an imported file: an untyped field bag keyed by the
// file's header columns. Rows travel JSON-encoded over the queue and are
// only coerced into a Product by the batch writer.
type Row map[string]string

// Product coerces the row into a Product. The id is taken from the row when
// present, otherwise generated via genID. Title must be non-empty and price
// must parse as a non-negative number.
func (r Row) Product(genID func() string) (Product, error) {
	title := strings.TrimSpace(r["title"])
	if title == "" {
		return Product{}, errors.NewValidationError("row has no title")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r["price"]), 64)
	if err != nil {
		return Product{}, errors.NewValidationError("row price is not a number").WithCause(err)
	}
	if price < 0 {
		return Product{}, errors.NewValidationError("row price is negative")
	}

	id := strings.TrimSpace(r["id"])
	if id == "" {
		id = genID()
	}

	return Product{
		ID:          id,
		Title:       title,
		Description: r["description"],
		Price:       price,
	}, nil
}
