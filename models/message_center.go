package models

import "time"

// MessageCenterEntry is a single sale alert stored in the message center.
type MessageCenterEntry struct {
	ID          int64     `db:"id" json:"id"`
	Subject     string    `db:"subject" json:"subject" validate:"required"`
	Message     string    `db:"message" json:"message" validate:"required"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
}

// TableName returns the name of the database table
// associated with the MessageCenterEntry model.
func (m MessageCenterEntry) TableName() string {
	return "message_center"
}
