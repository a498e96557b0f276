package catalog

// Product is a catalog entry. Products are immutable once written; the only
// mutation any component performs is a blind overwrite keyed by ID.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductView is a Product joined with its stock count. The count defaults
// to zero when no stock row exists for the product.
type ProductView struct {
	Product
	Count int `json:"count"`
}

// WithCount joins a product with a stock count.
func (p Product) WithCount(count int) ProductView {
	return ProductView{Product: p, Count: count}
}
