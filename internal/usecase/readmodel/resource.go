package readmodel

import "time"

// ResourceRM is the flat external representation of a bookable
// resource. Provenance fields are store-assigned and read-only.
type ResourceRM struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	ContactID  string    `json:"contact_id"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	ModifiedAt time.Time `json:"modified_at"`
	ModifiedBy string    `json:"modified_by"`
}
