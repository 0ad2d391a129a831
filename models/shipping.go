package models

import "time"

// ShippingAddress is a customer's delivery address. It is only ever inserted.
type ShippingAddress struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required"`
	Address     string    `db:"address" json:"address" validate:"required"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
}

// TableName returns the name of the database table
// associated with the ShippingAddress model.
func (s ShippingAddress) TableName() string {
	return "shipping_address"
}
