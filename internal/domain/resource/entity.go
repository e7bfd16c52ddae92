package resource

import (
	"strings"

	"resource-backend/internal/pkg/errs"
)

var (
	ErrEmptyFirstName = errs.New("first name cannot be empty")
	ErrEmptyLastName  = errs.New("last name cannot be empty")
	ErrEmptyContactID = errs.New("contact id cannot be empty")
	ErrNameTooLong    = errs.New("resource name is too long (max 255 characters)")
)

const MaxNameLength = 255

// Resource is a bookable entity linked to a contact in the account
// partition. The display name is optional at construction time and is
// resolved against the linked contact before persisting.
type Resource struct {
	name      string
	firstName string
	lastName  string
	contactID string
}

func New(name, firstName, lastName, contactID string) (*Resource, error) {
	name = strings.TrimSpace(name)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	contactID = strings.TrimSpace(contactID)

	if firstName == "" {
		return nil, ErrEmptyFirstName
	}
	if lastName == "" {
		return nil, ErrEmptyLastName
	}
	if contactID == "" {
		return nil, ErrEmptyContactID
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Resource{
		name:      name,
		firstName: firstName,
		lastName:  lastName,
		contactID: contactID,
	}, nil
}

// ResolveDisplayName returns the name to persist: the caller-supplied
// name when present, otherwise the linked contact's full name, otherwise
// "Last, First" assembled from the name parts.
func (r *Resource) ResolveDisplayName(contactFullName string) string {
	if r.name != "" {
		return r.name
	}
	if contactFullName != "" {
		return contactFullName
	}
	return r.lastName + ", " + r.firstName
}

func (r *Resource) Name() string      { return r.name }
func (r *Resource) FirstName() string { return r.firstName }
func (r *Resource) LastName() string  { return r.lastName }
func (r *Resource) ContactID() string { return r.contactID }
