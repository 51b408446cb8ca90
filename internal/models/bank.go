package models

import "time"

// Bank is the row shape of the banks table.
type Bank struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Code        *string   `db:"code"`
	ContactInfo *string   `db:"contact_info"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}
