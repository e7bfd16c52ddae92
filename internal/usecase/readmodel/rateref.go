package readmodel

import "time"

// RateRefRM is the external representation of a rate reference under a
// resource. RateTitle is resolved live from the catalog on every read.
type RateRefRM struct {
	ID        string    `json:"id"`
	RateID    string    `json:"rate_id"`
	RateTitle string    `json:"rate_title"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
