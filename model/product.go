package model

// Product is one inventory item as stored by the remote service. The json
// tags are the remote wire contract (snake_case); they must stay in sync
// with the service schema.
type Product struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Barcode       string   `json:"barcode"`
	Unit          string   `json:"unit"`
	Category      string   `json:"category,omitempty"`
	UnitQuantity  int64    `json:"unit_quantity"`
	SalePrice     float64  `json:"selling_price"`
	PurchasePrice float64  `json:"purchase_price"`
	CurrentStock  int64    `json:"current_stock"`
	ImageURLs     []string `json:"image_urls,omitempty"`
}

// ProductDraft is a product under construction. It carries no id; only the
// server-confirmed record ever enters the collection.
type ProductDraft struct {
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	Barcode       string   `json:"barcode" validate:"required"`
	Unit          string   `json:"unit" validate:"required"`
	Category      string   `json:"category,omitempty"`
	UnitQuantity  int64    `json:"unit_quantity" validate:"gte=0"`
	SalePrice     float64  `json:"selling_price" validate:"gte=0"`
	PurchasePrice float64  `json:"purchase_price" validate:"gte=0"`
	CurrentStock  int64    `json:"current_stock"`
	ImageURLs     []string `json:"image_urls,omitempty"`
}

// ToProduct builds the full-record replacement payload for an update.
func (d *ProductDraft) ToProduct(id uint64) *Product {
	return &Product{
		ID:            id,
		Name:          d.Name,
		Brand:         d.Brand,
		Barcode:       d.Barcode,
		Unit:          d.Unit,
		Category:      d.Category,
		UnitQuantity:  d.UnitQuantity,
		SalePrice:     d.SalePrice,
		PurchasePrice: d.PurchasePrice,
		CurrentStock:  d.CurrentStock,
		ImageURLs:     d.ImageURLs,
	}
}
