package models

import "time"

// User represents a registered account.
// Email is the login key; Password holds the bcrypt hash once persisted and
// must never be serialized back to clients.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `db:"id" json:"-"`

	// Email is the login key. Uniqueness is enforced by the store, if at all.
	Email string `db:"email" json:"email"`

	// FName is the user's first name.
	FName string `db:"fname" json:"fname"`

	// LName is the user's last name.
	LName string `db:"lname" json:"lname"`

	// Password is the bcrypt hash of the user's password.
	Password string `db:"password" json:"-"`

	// CreatedAt is the timestamp when the user row was created.
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
