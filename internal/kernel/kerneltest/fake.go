// Package kerneltest provides an in-memory kernel gateway for unit
// tests. Mutations are staged per transaction and applied on Commit, so
// rollback semantics match the real store.
package kerneltest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"resource-backend/internal/domain/lifecycle"
	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/clock"
	"resource-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type Fake struct {
	mu        sync.Mutex
	clock     clock.Clock
	resources map[string]kernel.Resource
	contacts  map[string]kernel.Contact
	rateLinks map[string]map[string]kernel.RateLink
	catalog   map[string]kernel.RateEntry

	// FailCommit forces every Commit to fail, for rollback-path tests.
	FailCommit bool

	Commits   int
	Rollbacks int
}

func New(c clock.Clock) *Fake {
	return &Fake{
		clock:     c,
		resources: map[string]kernel.Resource{},
		contacts:  map[string]kernel.Contact{},
		rateLinks: map[string]map[string]kernel.RateLink{},
		catalog:   map[string]kernel.RateEntry{},
	}
}

func (f *Fake) SeedContact(c kernel.Contact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.State == "" {
		c.State = lifecycle.StateActive
	}
	f.contacts[c.ID] = c
}

func (f *Fake) SeedResource(r kernel.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.State == "" {
		r.State = lifecycle.StateActive
	}
	if r.CreatedBy == "" {
		r.CreatedBy = "system"
	}
	if r.ModifiedBy == "" {
		r.ModifiedBy = "system"
	}
	f.resources[r.ID] = r
}

func (f *Fake) SeedCatalogEntry(e kernel.RateEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalog[e.Name] = e
}

func (f *Fake) NewUID() string {
	return uuid.NewString()
}

func (f *Fake) Begin(_ context.Context) (kernel.Tx, error) {
	return &fakeTx{fake: f}, nil
}

func (f *Fake) ResolveResource(_ context.Context, id string) (*kernel.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.resources[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *Fake) ResolveContact(_ context.Context, id string) (*kernel.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.contacts[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *Fake) ResolveRateCatalogEntry(_ context.Context, name string) (*kernel.RateEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.catalog[name]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *Fake) ResolveRateLink(_ context.Context, resourceID, id string) (*kernel.RateLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if links, ok := f.rateLinks[resourceID]; ok {
		if l, ok := links[id]; ok {
			return &l, nil
		}
	}
	return nil, nil
}

func (f *Fake) QueryResources(_ context.Context, q kernel.ResourceQuery) ([]kernel.Resource, error) {
	if q.QueryType != "" && q.QueryType != kernel.ResourceQueryType {
		return nil, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var result []kernel.Resource
	for _, r := range f.resources {
		if q.ActiveOnly && !r.State.Active() {
			continue
		}
		if q.Category != "" && !hasCategory(r.Categories, q.Category) {
			continue
		}
		if q.Expression != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(q.Expression)) {
			continue
		}
		result = append(result, r)
	}
	if q.OrderByNameAsc {
		sort.Slice(result, func(i, j int) bool {
			if result[i].Name != result[j].Name {
				return result[i].Name < result[j].Name
			}
			return result[i].ID < result[j].ID
		})
	}
	return result, nil
}

func (f *Fake) QueryContacts(_ context.Context, q kernel.ContactQuery) ([]kernel.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []kernel.Contact
	for _, c := range f.contacts {
		if q.FirstName != "" && c.FirstName != q.FirstName {
			continue
		}
		if q.LastName != "" && c.LastName != q.LastName {
			continue
		}
		if q.ActiveOnly && !c.State.Active() {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *Fake) QueryRateLinks(_ context.Context, q kernel.RateLinkQuery) ([]kernel.RateLink, error) {
	if q.QueryType != "" && q.QueryType != kernel.RateLinkQueryType {
		return nil, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var result []kernel.RateLink
	for _, l := range f.rateLinks[q.ResourceID] {
		if q.ActiveOnly && !l.State.Active() {
			continue
		}
		if q.Expression != "" && !strings.Contains(strings.ToLower(l.Name), strings.ToLower(q.Expression)) {
			continue
		}
		result = append(result, l)
	}
	if q.OrderByNameAsc {
		sort.Slice(result, func(i, j int) bool {
			if result[i].Name != result[j].Name {
				return result[i].Name < result[j].Name
			}
			return result[i].ID < result[j].ID
		})
	}
	return result, nil
}

func hasCategory(categories []string, want string) bool {
	for _, c := range categories {
		if c == want {
			return true
		}
	}
	return false
}

type fakeTx struct {
	fake *Fake
	ops  []func() error
	done bool
}

func (t *fakeTx) CreateResource(_ context.Context, id string, draft kernel.ResourceDraft) error {
	t.ops = append(t.ops, func() error {
		now := t.fake.clock.Now()
		t.fake.resources[id] = kernel.Resource{
			ID:         id,
			Name:       draft.Name,
			ContactID:  draft.ContactID,
			Categories: draft.Categories,
			State:      lifecycle.StateActive,
			CreatedAt:  now,
			CreatedBy:  "system",
			ModifiedAt: now,
			ModifiedBy: "system",
		}
		return nil
	})
	return nil
}

func (t *fakeTx) CreateContact(_ context.Context, id string, draft kernel.ContactDraft) error {
	t.ops = append(t.ops, func() error {
		t.fake.contacts[id] = kernel.Contact{
			ID:        id,
			FirstName: draft.FirstName,
			LastName:  draft.LastName,
			FullName:  draft.FullName,
			State:     lifecycle.StateActive,
		}
		return nil
	})
	return nil
}

func (t *fakeTx) CreateRateLink(_ context.Context, id string, draft kernel.RateLinkDraft) error {
	t.ops = append(t.ops, func() error {
		now := t.fake.clock.Now()
		links, ok := t.fake.rateLinks[draft.ResourceID]
		if !ok {
			links = map[string]kernel.RateLink{}
			t.fake.rateLinks[draft.ResourceID] = links
		}
		links[id] = kernel.RateLink{
			ID:          id,
			ResourceID:  draft.ResourceID,
			Name:        draft.Name,
			Description: draft.Description,
			RateCents:   draft.RateCents,
			RateType:    draft.RateType,
			Currency:    draft.Currency,
			State:       lifecycle.StateActive,
			CreatedAt:   now,
			CreatedBy:   "system",
			ModifiedAt:  now,
			ModifiedBy:  "system",
		}
		return nil
	})
	return nil
}

func (t *fakeTx) UpdateResource(_ context.Context, id string, patch kernel.ResourcePatch) error {
	t.ops = append(t.ops, func() error {
		r, ok := t.fake.resources[id]
		if !ok {
			return errs.New("update touched no resource row")
		}
		r.Name = patch.Name
		r.ContactID = patch.ContactID
		r.ModifiedAt = t.fake.clock.Now()
		t.fake.resources[id] = r
		return nil
	})
	return nil
}

func (t *fakeTx) DisableResource(_ context.Context, id string) error {
	t.ops = append(t.ops, func() error {
		r, ok := t.fake.resources[id]
		if !ok {
			return errs.New("disable touched no resource row")
		}
		next, err := r.State.Disable()
		if err != nil {
			return err
		}
		r.State = next
		r.ModifiedAt = t.fake.clock.Now()
		t.fake.resources[id] = r
		return nil
	})
	return nil
}

func (t *fakeTx) DisableRateLink(_ context.Context, resourceID, id string) error {
	t.ops = append(t.ops, func() error {
		links := t.fake.rateLinks[resourceID]
		l, ok := links[id]
		if !ok {
			return errs.New("disable touched no rate link row")
		}
		next, err := l.State.Disable()
		if err != nil {
			return err
		}
		l.State = next
		l.ModifiedAt = t.fake.clock.Now()
		links[id] = l
		return nil
	})
	return nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.done {
		return errs.New("transaction already finished")
	}
	if t.fake.FailCommit {
		t.done = true
		return errs.New("forced commit failure")
	}
	for _, op := range t.ops {
		if err := op(); err != nil {
			t.done = true
			return err
		}
	}
	t.done = true
	t.fake.Commits++
	return nil
}

// Rollback after Commit is a no-op, matching the gateway contract.
func (t *fakeTx) Rollback(_ context.Context) error {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.done {
		return nil
	}
	t.done = true
	t.ops = nil
	t.fake.Rollbacks++
	return nil
}
