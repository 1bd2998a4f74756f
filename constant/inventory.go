package constant

// InventoryStatus is the lifecycle of one inventory screen instance.
type InventoryStatus int

const (
	InventoryLoading InventoryStatus = iota
	InventoryReady
	InventoryFailed
)

var InventoryStatusLabel = map[InventoryStatus]string{
	InventoryLoading: "loading",
	InventoryReady:   "ready",
	InventoryFailed:  "failed",
}

type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

var SortDirectionLabel = map[SortDirection]string{
	SortAscending:  "asc",
	SortDescending: "desc",
}

const (
	// SessionSlotKey is the single durable slot holding the signed-in shop.
	SessionSlotKey = "merchant:session"

	DefaultItemsPerPage = 5
)
