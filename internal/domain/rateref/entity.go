package rateref

import (
	"strings"

	"resource-backend/internal/pkg/errs"
)

var ErrEmptyRateID = errs.New("rate id cannot be empty")

// Marker prefixes the internal link name of a rate reference. The
// catalog entry is re-resolved later by stripping this prefix.
const Marker = "#"

// RateRef links a resource to an entry in the shared rate catalog.
type RateRef struct {
	rateID string
}

func New(rateID string) (*RateRef, error) {
	rateID = strings.TrimSpace(rateID)
	if rateID == "" {
		return nil, ErrEmptyRateID
	}
	return &RateRef{rateID: rateID}, nil
}

func (r *RateRef) RateID() string { return r.rateID }

// LinkName is the internal name persisted on the link entry.
func (r *RateRef) LinkName() string { return Marker + r.rateID }

// RateIDFromLinkName recovers the catalog entry name from a stored link
// name. The second return is false for names without the marker prefix.
func RateIDFromLinkName(name string) (string, bool) {
	return strings.CutPrefix(name, Marker)
}
