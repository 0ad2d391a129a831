package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FName    string `json:"fname" validate:"required"`
	LName    string `json:"lname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthRequest is the body of POST /auth.
type AuthRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProductInput describes a product to be created.
// Name is stored as the product description.
type ProductInput struct {
	Brand string  `json:"brand" db:"brands" validate:"required"`
	Name  string  `json:"name" db:"description" validate:"required"`
	Price float64 `json:"price" db:"product_price" validate:"gte=0"`
}

// CreateProductRequest is the body of POST /.
type CreateProductRequest struct {
	Product *ProductInput `json:"product" validate:"required"`
}

// UpdateProductRequest is the body of PUT /{id}. Model is the new description.
type UpdateProductRequest struct {
	Model string `json:"model" validate:"required"`
}

// ShippingRequest is the body of POST /shipping.
type ShippingRequest struct {
	CustomerData *ShippingAddress `json:"customerData" validate:"required"`
}

// NotifyRequest is the body of POST /notify.
type NotifyRequest struct {
	SaleAlert []MessageCenterEntry `json:"saleAlert" validate:"required,min=1,dive"`
}
