package catalog

// Stock records the available count for a product. One-to-one with Product,
// keyed by the product ID.
type Stock struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}
