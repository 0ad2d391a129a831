package store

// Session options applied on every checkout.
const (
	setStandardConformingStrings = `SET SESSION standard_conforming_strings = on`
	setTimeZoneFormat            = `SET SESSION TIME ZONE INTERVAL '%s' HOUR TO MINUTE`
)

const (
	createUser = `INSERT INTO users (email, fname, lname, password, created_at)
		VALUES (:email, :fname, :lname, :password, NOW())
		RETURNING id;`

	findUserByEmail = `SELECT id, email, fname, lname, password, created_at
		FROM users
		WHERE email = :email;`
)

const (
	createProduct = `INSERT INTO products (brands, description, product_price, date_created)
		VALUES (:brands, :description, :product_price, NOW())
		RETURNING id;`

	getProductDescription = `SELECT description
		FROM products
		WHERE id = :id;`

	updateProductDescription = `UPDATE products
		SET description = :description
		WHERE id = :id;`

	deleteProduct = `DELETE FROM products
		WHERE id = :id;`
)

const (
	createShippingAddress = `INSERT INTO shipping_address (name, address, date_created)
		VALUES (:name, :address, NOW())
		RETURNING id;`

	createMessageCenterEntry = `INSERT INTO message_center (subject, message, date_created)
		VALUES (:subject, :message, NOW())
		RETURNING id;`
)
