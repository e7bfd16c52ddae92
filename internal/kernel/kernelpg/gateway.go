// Package kernelpg backs the kernel gateway with Postgres. The two
// logical partitions map to table groups: activity_resources and
// activity_rate_links (activity partition), account_contacts (account
// partition), plus the shared rate_catalog_entries table.
package kernelpg

import (
	"context"
	"strconv"

	"resource-backend/internal/domain/lifecycle"
	"resource-backend/internal/kernel"
	"resource-backend/internal/pkg/config"
	"resource-backend/internal/pkg/errs"
	"resource-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Gateway struct {
	pool    *pgxpool.Pool
	catalog string
}

func New(pool *pgxpool.Pool, cfg config.KernelConfig) *Gateway {
	return &Gateway{
		pool:    pool,
		catalog: cfg.RateCatalogName,
	}
}

func (g *Gateway) Begin(ctx context.Context) (kernel.Tx, error) {
	pgxTx, err := g.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, errs.Wrap(err, "failed to begin kernel transaction")
	}
	return &pgTx{tx: pgxTx}, nil
}

func (g *Gateway) NewUID() string {
	return uuid.NewString()
}

const resourceColumns = `id, name, contact_id, categories, disabled, created_at, created_by, modified_at, modified_by`

func (g *Gateway) ResolveResource(ctx context.Context, id string) (*kernel.Resource, error) {
	row := g.pool.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM activity_resources WHERE id = $1`, id)
	res, err := scanResource(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to resolve resource")
	}
	return res, nil
}

func (g *Gateway) ResolveContact(ctx context.Context, id string) (*kernel.Contact, error) {
	row := g.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, full_name, disabled
		   FROM account_contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to resolve contact")
	}
	return c, nil
}

func (g *Gateway) ResolveRateCatalogEntry(ctx context.Context, name string) (*kernel.RateEntry, error) {
	var entry kernel.RateEntry
	err := g.pool.QueryRow(ctx,
		`SELECT name, description, rate_cents, rate_type, currency
		   FROM rate_catalog_entries WHERE catalog = $1 AND name = $2`,
		g.catalog, name,
	).Scan(&entry.Name, &entry.Description, &entry.RateCents, &entry.RateType, &entry.Currency)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to resolve rate catalog entry")
	}
	return &entry, nil
}

const rateLinkColumns = `id, resource_id, name, description, rate_cents, rate_type, currency, disabled, created_at, created_by, modified_at, modified_by`

func (g *Gateway) ResolveRateLink(ctx context.Context, resourceID, id string) (*kernel.RateLink, error) {
	row := g.pool.QueryRow(ctx,
		`SELECT `+rateLinkColumns+` FROM activity_rate_links WHERE resource_id = $1 AND id = $2`,
		resourceID, id)
	link, err := scanRateLink(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to resolve rate link")
	}
	return link, nil
}

// QueryResources evaluates an abstract resource predicate. An unknown
// query type targets a collection this store does not hold, which
// yields an empty result rather than an error.
func (g *Gateway) QueryResources(ctx context.Context, q kernel.ResourceQuery) ([]kernel.Resource, error) {
	if q.QueryType != "" && q.QueryType != kernel.ResourceQueryType {
		return nil, nil
	}

	sql := `SELECT ` + resourceColumns + ` FROM activity_resources WHERE 1=1`
	args := []any{}
	if q.ActiveOnly {
		sql += ` AND NOT disabled`
	}
	if q.Category != "" {
		args = append(args, q.Category)
		sql += ` AND $1 = ANY(categories)`
	}
	if q.Expression != "" {
		args = append(args, "%"+q.Expression+"%")
		sql += ` AND name ILIKE $` + itoa(len(args))
	}
	if q.OrderByNameAsc {
		sql += ` ORDER BY name ASC, id ASC`
	}

	rows, err := g.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query resources")
	}
	defer rows.Close()

	var result []kernel.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan resource row")
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate resource rows")
	}
	return result, nil
}

func (g *Gateway) QueryContacts(ctx context.Context, q kernel.ContactQuery) ([]kernel.Contact, error) {
	sql := `SELECT id, first_name, last_name, full_name, disabled FROM account_contacts WHERE 1=1`
	args := []any{}
	if q.FirstName != "" {
		args = append(args, q.FirstName)
		sql += ` AND first_name = $` + itoa(len(args))
	}
	if q.LastName != "" {
		args = append(args, q.LastName)
		sql += ` AND last_name = $` + itoa(len(args))
	}
	if q.ActiveOnly {
		sql += ` AND NOT disabled`
	}

	rows, err := g.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query contacts")
	}
	defer rows.Close()

	var result []kernel.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan contact row")
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate contact rows")
	}
	return result, nil
}

func (g *Gateway) QueryRateLinks(ctx context.Context, q kernel.RateLinkQuery) ([]kernel.RateLink, error) {
	if q.QueryType != "" && q.QueryType != kernel.RateLinkQueryType {
		return nil, nil
	}

	sql := `SELECT ` + rateLinkColumns + ` FROM activity_rate_links WHERE resource_id = $1`
	args := []any{q.ResourceID}
	if q.ActiveOnly {
		sql += ` AND NOT disabled`
	}
	if q.Expression != "" {
		args = append(args, "%"+q.Expression+"%")
		sql += ` AND name ILIKE $` + itoa(len(args))
	}
	if q.OrderByNameAsc {
		sql += ` ORDER BY name ASC, id ASC`
	}

	rows, err := g.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to query rate links")
	}
	defer rows.Close()

	var result []kernel.RateLink
	for rows.Next() {
		link, err := scanRateLink(rows)
		if err != nil {
			return nil, errs.Wrap(err, "failed to scan rate link row")
		}
		result = append(result, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate rate link rows")
	}
	return result, nil
}

func scanResource(row pgx.Row) (*kernel.Resource, error) {
	var (
		res       kernel.Resource
		contactID pgtype.Text
		disabled  bool
	)
	err := row.Scan(&res.ID, &res.Name, &contactID, &res.Categories, &disabled,
		&res.CreatedAt, &res.CreatedBy, &res.ModifiedAt, &res.ModifiedBy)
	if err != nil {
		return nil, err
	}
	res.ContactID = pgconv.StringPtrFromPgtype(contactID)
	res.State = lifecycle.FromDisabledFlag(disabled)
	return &res, nil
}

func scanContact(row pgx.Row) (*kernel.Contact, error) {
	var (
		c        kernel.Contact
		disabled bool
	)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.FullName, &disabled); err != nil {
		return nil, err
	}
	c.State = lifecycle.FromDisabledFlag(disabled)
	return &c, nil
}

func scanRateLink(row pgx.Row) (*kernel.RateLink, error) {
	var (
		link      kernel.RateLink
		rateCents pgtype.Int8
		disabled  bool
	)
	err := row.Scan(&link.ID, &link.ResourceID, &link.Name, &link.Description,
		&rateCents, &link.RateType, &link.Currency, &disabled,
		&link.CreatedAt, &link.CreatedBy, &link.ModifiedAt, &link.ModifiedBy)
	if err != nil {
		return nil, err
	}
	link.RateCents = pgconv.Int64PtrFromPgtype(rateCents)
	link.State = lifecycle.FromDisabledFlag(disabled)
	return &link, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
