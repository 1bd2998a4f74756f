package model

import (
	"strconv"

	"github.com/ernitinjai/meenicode-pos/constant"
)

// SortKey identifies one sortable product field. Keys match the wire field
// names so a client can use the same identifiers it sees in payloads.
type SortKey string

const (
	SortByID            SortKey = "id"
	SortByName          SortKey = "name"
	SortByBrand         SortKey = "brand"
	SortByBarcode       SortKey = "barcode"
	SortByCategory      SortKey = "category"
	SortByUnit          SortKey = "unit"
	SortByUnitQuantity  SortKey = "unit_quantity"
	SortBySalePrice     SortKey = "selling_price"
	SortByPurchasePrice SortKey = "purchase_price"
	SortByCurrentStock  SortKey = "current_stock"
)

type FieldKind int

const (
	FieldString FieldKind = iota
	FieldNumber
)

// FieldDescriptor declares one searchable, sortable product field. Search
// and sort operate over this closed list only; an unknown key is rejected
// up front instead of silently doing nothing.
type FieldDescriptor struct {
	Key    SortKey
	Kind   FieldKind
	Text   func(p *Product) string
	Number func(p *Product) float64
}

// ProductFields is the declared schema of comparable product fields.
// ImageURLs is display-only and deliberately absent.
var ProductFields = []FieldDescriptor{
	{Key: SortByID, Kind: FieldNumber, Number: func(p *Product) float64 { return float64(p.ID) }},
	{Key: SortByName, Kind: FieldString, Text: func(p *Product) string { return p.Name }},
	{Key: SortByBrand, Kind: FieldString, Text: func(p *Product) string { return p.Brand }},
	{Key: SortByBarcode, Kind: FieldString, Text: func(p *Product) string { return p.Barcode }},
	{Key: SortByCategory, Kind: FieldString, Text: func(p *Product) string { return p.Category }},
	{Key: SortByUnit, Kind: FieldString, Text: func(p *Product) string { return p.Unit }},
	{Key: SortByUnitQuantity, Kind: FieldNumber, Number: func(p *Product) float64 { return float64(p.UnitQuantity) }},
	{Key: SortBySalePrice, Kind: FieldNumber, Number: func(p *Product) float64 { return p.SalePrice }},
	{Key: SortByPurchasePrice, Kind: FieldNumber, Number: func(p *Product) float64 { return p.PurchasePrice }},
	{Key: SortByCurrentStock, Kind: FieldNumber, Number: func(p *Product) float64 { return float64(p.CurrentStock) }},
}

// FieldByKey looks a descriptor up in the declared schema.
func FieldByKey(key SortKey) (*FieldDescriptor, bool) {
	for i := range ProductFields {
		if ProductFields[i].Key == key {
			return &ProductFields[i], true
		}
	}
	return nil, false
}

// SearchText is the canonical text form of the field used for substring
// matching. Numeric fields use their shortest decimal representation.
func (f *FieldDescriptor) SearchText(p *Product) string {
	if f.Kind == FieldString {
		return f.Text(p)
	}
	return strconv.FormatFloat(f.Number(p), 'f', -1, 64)
}

type SortConfig struct {
	Key       SortKey                `json:"key"`
	Direction constant.SortDirection `json:"direction"`
}

// InventoryViewState is the transient screen state, separate from the
// authoritative product collection.
type InventoryViewState struct {
	SearchTerm       string     `json:"search_term,omitempty"`
	SelectedCategory string     `json:"selected_category,omitempty"`
	Sort             SortConfig `json:"sort"`
	CurrentPage      int        `json:"current_page"`
	ItemsPerPage     int        `json:"items_per_page"`
}

// InventoryView is one derived page of the filtered, sorted collection.
type InventoryView struct {
	Items      []Product          `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	State      InventoryViewState `json:"state"`
	Categories []string           `json:"categories,omitempty"`
}
