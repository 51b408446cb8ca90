package domain

import "time"

// AuditFields holds the store-managed timestamps of a record.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordStatus is the lifecycle flag shared by projects and banks.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)

// Scoped is implemented by records that belong to exactly one bank and one project.
type Scoped interface {
	Scope() (bankID, projectID string)
}
