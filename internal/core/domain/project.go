package domain

import "time"

// Project is a construction/project contract that letters and credits are issued against.
type Project struct {
	ID          string       `json:"id"`          // Primary Key (UUID, generated by the store)
	Name        string       `json:"name"`        // Not Null
	Description string       `json:"description"` // Nullable
	Status      RecordStatus `json:"status"`      // active | inactive
	CreatedAt   time.Time    `json:"createdAt"`
}
