package converter

import (
	"strings"

	"resource-backend/internal/kernel"
	"resource-backend/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// ToResourceRM maps a kernel resource (plus its optionally resolved
// contact) onto the flat external representation. When no contact is
// linked, the name parts are derived by splitting the display name on
// the first comma. The derived parts are a display aid only and are
// never written back.
func ToResourceRM(res *kernel.Resource, contact *kernel.Contact) *readmodel.ResourceRM {
	rm := &readmodel.ResourceRM{}
	_ = copier.Copy(rm, res)

	if contact != nil {
		rm.FirstName = contact.FirstName
		rm.LastName = contact.LastName
		rm.ContactID = contact.ID
		return rm
	}

	rm.ContactID = ""
	rm.LastName, rm.FirstName = splitDisplayName(res.Name)
	return rm
}

func splitDisplayName(name string) (lastName, firstName string) {
	before, after, found := strings.Cut(name, ",")
	if !found {
		return strings.TrimSpace(name), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
