package query

/*
	Package query provides the interface for querying mongo.
	It is a thin wrap over https://github.com/mongodb/mongo-go-driver;
	see https://godoc.org/go.mongodb.org/mongo-driver/mongo for details.
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns the count of matched entries in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching the selector, inserting it when absent
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts by the `sort` argument (ex "timestamp" ascending, or
	// "-timestamp" descending); if `sort` is "" the order is unspecified.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Patch $sets the update on the entry matching the selector.
	// Returns ErrNotFound if the selector does not match any documents.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// CustomPatch patches an entry with a customized mongo update document.
	// Returns ErrNotFound if upsert is false and the selector does not match.
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// Remove removes one entry matching the selector.
	// Returns ErrNotFound if the selector does not match any documents.
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll removes all entries matching the selector
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// RunWithTransaction runs the callback inside one mongo session
	// transaction; every write issued through the callback's ctx commits or
	// aborts as a unit. This is the ledger's all-or-nothing boundary.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
