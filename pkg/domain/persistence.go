package domain

import (
	"context"
	"fmt"
)

// Transaction exposes the catalogue operations a persistence implementation
// must support within an atomic scope. Records of every kind flow through
// the same four operations; the kind is carried by the record itself.
type Transaction interface {
	Snapshot() TransactionView
	Create(Record) (Record, error)
	Update(kind EntityKind, id string, mutator func(Record) error) (Record, error)
	Delete(kind EntityKind, id string) error
	Find(kind EntityKind, id string) (Record, bool)
}

// TransactionView provides read-only access to a consistent state snapshot.
type TransactionView interface {
	List(kind EntityKind) []Record
	Find(kind EntityKind, id string) (Record, bool)
}

// PersistentStore is a minimal abstraction over durable backends. It mirrors
// the subset of store capabilities used directly by higher layers.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) error
	View(ctx context.Context, fn func(TransactionView) error) error
	Get(kind EntityKind, id string) (Record, bool)
	List(kind EntityKind) []Record
}

// NotFoundError reports a lookup against an id that is not in the store.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ConflictError reports a create against an id that already exists.
type ConflictError struct {
	Kind EntityKind
	ID   string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.ID)
}
