// Package memory provides the canonical in-memory implementation of the
// catalogue persistence store. Durable backends embed it and snapshot its
// state after successful transactions.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"materialcore/pkg/domain"
)

// Compile-time contract assertion against the domain persistence interface.
var _ domain.PersistentStore = (*Store)(nil)

// Schema maps entity kinds to prototype constructors. Snapshot decoding
// needs a concrete type per bucket; everything else works off the records
// themselves.
type Schema map[domain.EntityKind]func() domain.Record

// Snapshot captures a point-in-time serialization of the store state as
// raw JSON keyed by kind and record id.
type Snapshot map[domain.EntityKind]map[string]json.RawMessage

type storeState map[domain.EntityKind]map[string]domain.Record

func (st storeState) bucket(kind domain.EntityKind) map[string]domain.Record {
	b, ok := st[kind]
	if !ok {
		b = make(map[string]domain.Record)
		st[kind] = b
	}
	return b
}

func (st storeState) clone() storeState {
	out := make(storeState, len(st))
	for kind, bucket := range st {
		fresh := make(map[string]domain.Record, len(bucket))
		for id, rec := range bucket {
			fresh[id] = cloneRecord(rec)
		}
		out[kind] = fresh
	}
	return out
}

// cloneRecord deep-copies a record through a JSON round trip into a new
// instance of the same concrete type. Records are plain data structs, so
// the round trip is lossless.
func cloneRecord(rec domain.Record) domain.Record {
	fresh, ok := reflect.New(reflect.TypeOf(rec).Elem()).Interface().(domain.Record)
	if !ok {
		panic(fmt.Sprintf("memory store: %T does not implement domain.Record as a pointer", rec))
	}
	data, err := json.Marshal(rec)
	if err != nil {
		panic(fmt.Errorf("memory store clone %s: %w", rec.Kind(), err))
	}
	if err := json.Unmarshal(data, fresh); err != nil {
		panic(fmt.Errorf("memory store clone %s: %w", rec.Kind(), err))
	}
	return fresh
}

// Store is a mutex-guarded kind/id map. Transactions mutate a deep clone
// that replaces the live state only when the transaction function succeeds.
type Store struct {
	mu     sync.RWMutex
	state  storeState
	schema Schema
	nowFn  func() time.Time
}

// NewStore constructs an empty in-memory store. The schema is only
// consulted when importing serialized snapshots; a nil schema is valid for
// purely ephemeral use.
func NewStore(schema Schema) *Store {
	return &Store{
		state:  make(storeState),
		schema: schema,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) newID() string {
	return uuid.NewString()
}

// Schema exposes the configured prototype table.
func (s *Store) Schema() Schema { return s.schema }

// NowFunc returns the time provider used for record stamping.
func (s *Store) NowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn
}

// SetNowFunc overrides the time provider. Intended for deterministic tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// ExportState serializes the current state for external persistence.
func (s *Store) ExportState() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(Snapshot, len(s.state))
	for kind, bucket := range s.state {
		out := make(map[string]json.RawMessage, len(bucket))
		for id, rec := range bucket {
			data, err := json.Marshal(rec)
			if err != nil {
				return nil, fmt.Errorf("export %s %q: %w", kind, id, err)
			}
			out[id] = data
		}
		snapshot[kind] = out
	}
	return snapshot, nil
}

// ImportState replaces the store state with the decoded snapshot. Buckets
// for kinds absent from the schema are rejected rather than silently
// dropped.
func (s *Store) ImportState(snapshot Snapshot) error {
	fresh := make(storeState, len(snapshot))
	for kind, bucket := range snapshot {
		proto, ok := s.schema[kind]
		if !ok {
			return fmt.Errorf("import: no prototype for kind %q", kind)
		}
		out := make(map[string]domain.Record, len(bucket))
		for id, raw := range bucket {
			rec := proto()
			if err := json.Unmarshal(raw, rec); err != nil {
				return fmt.Errorf("import %s %q: %w", kind, id, err)
			}
			out[id] = rec
		}
		fresh[kind] = out
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fresh
	return nil
}

// RunInTransaction executes fn against a transactional copy of the store
// state and swaps it in only when fn returns nil.
func (s *Store) RunInTransaction(_ context.Context, fn func(tx domain.Transaction) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store: s,
		state: s.state.clone(),
		now:   s.nowFn(),
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(_ context.Context, fn func(view domain.TransactionView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.state.clone()
	return fn(transactionView{state: snapshot})
}

// Get retrieves a record by kind and id.
func (s *Store) Get(kind domain.EntityKind, id string) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.state[kind][id]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}

// List returns all records of a kind ordered by id.
func (s *Store) List(kind domain.EntityKind) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listBucket(s.state, kind)
}

func listBucket(st storeState, kind domain.EntityKind) []domain.Record {
	bucket := st[kind]
	out := make([]domain.Record, 0, len(bucket))
	for _, rec := range bucket {
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out
}

type transaction struct {
	store *Store
	state storeState
	now   time.Time
}

type transactionView struct {
	state storeState
}

// List returns all records of a kind within the snapshot, ordered by id.
func (v transactionView) List(kind domain.EntityKind) []domain.Record {
	return listBucket(v.state, kind)
}

// Find retrieves a record by kind and id from the snapshot.
func (v transactionView) Find(kind domain.EntityKind, id string) (domain.Record, bool) {
	rec, ok := v.state[kind][id]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() domain.TransactionView {
	return transactionView{state: tx.state}
}

// Create inserts a record, minting an id when the caller left it empty and
// stamping creation time. The caller's record is updated in place with the
// minted id and timestamps.
func (tx *transaction) Create(rec domain.Record) (domain.Record, error) {
	if rec == nil {
		return nil, fmt.Errorf("create: nil record")
	}
	kind := rec.Kind()
	bucket := tx.state.bucket(kind)
	if rec.RecordID() == "" {
		rec.SetRecordID(tx.store.newID())
	}
	id := rec.RecordID()
	if _, exists := bucket[id]; exists {
		return nil, domain.ConflictError{Kind: kind, ID: id}
	}
	rec.StampCreated(tx.now)
	bucket[id] = cloneRecord(rec)
	return cloneRecord(rec), nil
}

// Update applies the mutator to a copy of the stored record and persists
// the result with a fresh update stamp. The id cannot be changed through a
// mutator.
func (tx *transaction) Update(kind domain.EntityKind, id string, mutator func(domain.Record) error) (domain.Record, error) {
	bucket := tx.state.bucket(kind)
	current, ok := bucket[id]
	if !ok {
		return nil, domain.NotFoundError{Kind: kind, ID: id}
	}
	next := cloneRecord(current)
	if err := mutator(next); err != nil {
		return nil, err
	}
	next.SetRecordID(id)
	next.StampUpdated(tx.now)
	bucket[id] = next
	return cloneRecord(next), nil
}

// Delete removes a record, failing when it does not exist.
func (tx *transaction) Delete(kind domain.EntityKind, id string) error {
	bucket := tx.state.bucket(kind)
	if _, ok := bucket[id]; !ok {
		return domain.NotFoundError{Kind: kind, ID: id}
	}
	delete(bucket, id)
	return nil
}

// Find retrieves a record by kind and id within the transaction scope.
func (tx *transaction) Find(kind domain.EntityKind, id string) (domain.Record, bool) {
	rec, ok := tx.state[kind][id]
	if !ok {
		return nil, false
	}
	return cloneRecord(rec), true
}
