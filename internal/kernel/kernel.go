// Package kernel defines the narrow contract this service consumes from
// the backing relationship-management store: per-operation transactions,
// optional-returning lookups, predicate queries and id generation. The
// store's own object model and query language stay behind this boundary.
package kernel

import (
	"context"
	"time"

	"resource-backend/internal/domain/lifecycle"
)

// Well-known names inside the backing store.
const (
	// CategoryProject tags resources that belong to the project pool.
	CategoryProject = "project"

	// ResourceQueryType is the default collection targeted by resource
	// list queries when the caller does not name one.
	ResourceQueryType = "activity:Resource"

	// RateLinkQueryType is the collection of rate links owned by a
	// resource.
	RateLinkQueryType = "activity:ResourceRate"
)

type Resource struct {
	ID         string
	Name       string
	ContactID  *string
	Categories []string
	State      lifecycle.State
	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

type Contact struct {
	ID        string
	FirstName string
	LastName  string
	FullName  string
	State     lifecycle.State
}

// RateLink is a named link entry owned by a resource, carrying the
// denormalized catalog fields copied at creation time.
type RateLink struct {
	ID          string
	ResourceID  string
	Name        string
	Description string
	RateCents   *int64
	RateType    string
	Currency    string
	State       lifecycle.State
	CreatedAt   time.Time
	CreatedBy   string
	ModifiedAt  time.Time
	ModifiedBy  string
}

// RateEntry is a row of the shared rate catalog, keyed by name.
type RateEntry struct {
	Name        string
	Description string
	RateCents   int64
	RateType    string
	Currency    string
}

// ResourceQuery is an abstract predicate over the resource collection.
// QueryType selects the collection; an empty value targets
// ResourceQueryType. Expression is an opaque filter handed through to
// the store.
type ResourceQuery struct {
	QueryType      string
	Expression     string
	Category       string
	ActiveOnly     bool
	OrderByNameAsc bool
}

type ContactQuery struct {
	FirstName  string
	LastName   string
	ActiveOnly bool
}

type RateLinkQuery struct {
	QueryType      string
	Expression     string
	ResourceID     string
	ActiveOnly     bool
	OrderByNameAsc bool
}

type ResourceDraft struct {
	Name       string
	ContactID  *string
	Categories []string
}

type ContactDraft struct {
	FirstName string
	LastName  string
	FullName  string
}

type RateLinkDraft struct {
	ResourceID  string
	Name        string
	Description string
	RateCents   *int64
	RateType    string
	Currency    string
}

// ResourcePatch overwrites the display name and the contact link. A nil
// ContactID detaches the link.
type ResourcePatch struct {
	Name      string
	ContactID *string
}

// Gateway is the session to the backing store. Resolve methods return
// (nil, nil) when the entity is absent; absence is never an error at
// this boundary.
type Gateway interface {
	Begin(ctx context.Context) (Tx, error)

	ResolveResource(ctx context.Context, id string) (*Resource, error)
	ResolveContact(ctx context.Context, id string) (*Contact, error)
	ResolveRateCatalogEntry(ctx context.Context, name string) (*RateEntry, error)
	ResolveRateLink(ctx context.Context, resourceID, id string) (*RateLink, error)

	QueryResources(ctx context.Context, q ResourceQuery) ([]Resource, error)
	QueryContacts(ctx context.Context, q ContactQuery) ([]Contact, error)
	QueryRateLinks(ctx context.Context, q RateLinkQuery) ([]RateLink, error)

	// NewUID returns a globally unique identifier, invoked once per
	// created entity.
	NewUID() string
}

// Tx scopes the mutating section of one operation. Rollback is safe to
// call after a failed Commit.
type Tx interface {
	CreateResource(ctx context.Context, id string, draft ResourceDraft) error
	CreateContact(ctx context.Context, id string, draft ContactDraft) error
	CreateRateLink(ctx context.Context, id string, draft RateLinkDraft) error
	UpdateResource(ctx context.Context, id string, patch ResourcePatch) error
	DisableResource(ctx context.Context, id string) error
	DisableRateLink(ctx context.Context, resourceID, id string) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
