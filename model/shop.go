package model

// Shop is the merchant profile returned by the remote service. The shop
// endpoints use camelCase field names, unlike the product endpoints.
type Shop struct {
	ID           string `json:"id"`
	ShopName     string `json:"shopName"`
	OwnerName    string `json:"ownerName"`
	ShopCategory string `json:"shopCategory"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
}

// Session is the persisted signed-in state. It is created on a successful
// login or registration and lives until explicit sign-out.
type Session struct {
	Shop          Shop `json:"shop"`
	Authenticated bool `json:"authenticated"`
}

// LoginRequest for shop login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest for shop registration
type RegisterRequest struct {
	ShopName     string `json:"shopName" validate:"required"`
	OwnerName    string `json:"ownerName" validate:"required"`
	ShopCategory string `json:"shopCategory" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,len=11,numeric"`
	Address      string `json:"address" validate:"required"`
	Password     string `json:"password" validate:"required,min=6"`
}
