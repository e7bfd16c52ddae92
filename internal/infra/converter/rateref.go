package converter

import (
	"resource-backend/internal/domain/rateref"
	"resource-backend/internal/kernel"
	"resource-backend/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// ToRateRefRM maps a kernel rate link onto the external representation.
// The catalog entry, when resolved, supplies the live title; otherwise
// the description denormalized at link time is the fallback.
func ToRateRefRM(link *kernel.RateLink, entry *kernel.RateEntry) *readmodel.RateRefRM {
	rm := &readmodel.RateRefRM{}
	_ = copier.Copy(rm, link)

	if rateID, ok := rateref.RateIDFromLinkName(link.Name); ok {
		rm.RateID = rateID
	}
	if entry != nil {
		rm.RateTitle = entry.Description
	} else {
		rm.RateTitle = link.Description
	}
	return rm
}
