// Package normalize derives the relational order schema from the
// denormalized raw source.
//
// Six tables are built along a fixed dependency chain:
//
//	Region < Country < Customer < ProductCategory < Product < OrderDetail
//
// Each builder re-parses the raw source, derives its distinct entities,
// assigns dense 1-based surrogate keys in a deterministic sort order,
// resolves foreign keys against the already-persisted prerequisite
// tables, and replaces its table wholesale. Builders never update rows
// in place; the normalized store is disposable and always
// reconstructable from the source plus the prerequisite chain.
package normalize

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blaze-oss/orderbase/internal/logging"
	"github.com/blaze-oss/orderbase/internal/store"
)

// Table names in dependency order.
const (
	TableRegion          = "Region"
	TableCountry         = "Country"
	TableCustomer        = "Customer"
	TableProductCategory = "ProductCategory"
	TableProduct         = "Product"
	TableOrderDetail     = "OrderDetail"
)

// Chain is the fixed build order. Every table's prerequisites appear
// before it.
var Chain = []string{
	TableRegion,
	TableCountry,
	TableCustomer,
	TableProductCategory,
	TableProduct,
	TableOrderDetail,
}

// ErrReferential reports a dictionary lookup that failed because a
// prerequisite table lacks an expected entry. It indicates the
// prerequisite was built from a different version of the raw source.
var ErrReferential = errors.New("referential lookup failed")

// ErrUnknownTable reports a table name outside the normalized schema.
var ErrUnknownTable = errors.New("unknown table")

// Pipeline builds the normalized schema from one raw source file into
// one database handle. It is single-writer: no builder may run
// concurrently with another builder or with a reader of its table.
type Pipeline struct {
	db     *sql.DB
	source string
}

// New returns a Pipeline reading from sourcePath and writing to db.
func New(db *sql.DB, sourcePath string) *Pipeline {
	return &Pipeline{db: db, source: sourcePath}
}

func (p *Pipeline) builder(table string) func(context.Context) error {
	switch table {
	case TableRegion:
		return p.buildRegion
	case TableCountry:
		return p.buildCountry
	case TableCustomer:
		return p.buildCustomer
	case TableProductCategory:
		return p.buildProductCategory
	case TableProduct:
		return p.buildProduct
	case TableOrderDetail:
		return p.buildOrderDetail
	default:
		return nil
	}
}

// Ensure guarantees the named table exists, building it (and,
// recursively, its prerequisites) if absent. Presence is checked by
// name only: a stale or partially populated table counts as built.
// Callers that need a guaranteed-fresh table must use Rebuild.
func (p *Pipeline) Ensure(ctx context.Context, table string) error {
	build := p.builder(table)
	if build == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	exists, err := store.TableExists(ctx, p.db, table)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logging.Debug().Str("table", table).Msg("Building missing table")
	return build(ctx)
}

// Rebuild forces a fresh build of every table in the chain up to and
// including the named table.
func (p *Pipeline) Rebuild(ctx context.Context, table string) error {
	if p.builder(table) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	for _, name := range Chain {
		if err := p.builder(name)(ctx); err != nil {
			return err
		}
		if name == table {
			return nil
		}
	}
	return nil
}

// RebuildAll forces a fresh build of the whole chain.
func (p *Pipeline) RebuildAll(ctx context.Context) error {
	return p.Rebuild(ctx, TableOrderDetail)
}
