// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is a row of the products table.
type Product struct {
	ID          int64     `db:"id" json:"id"`
	Brand       string    `db:"brands" json:"brand"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"product_price" json:"price"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductDescription is the projection returned by a product lookup.
type ProductDescription struct {
	Description string `db:"description" json:"description"`
}
