package domain

import "time"

// Bank is an issuer of guarantee letters and credits.
type Bank struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"`        // Nullable, e.g. EFT/SWIFT short code
	ContactInfo string       `json:"contactInfo"` // Nullable free text
	Status      RecordStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}
