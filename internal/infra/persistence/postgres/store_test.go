package postgres

import (
	"context"
	"database/sql"
	"testing"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/internal/infra/persistence/postgres/testutil"
	"materialcore/pkg/domain"
)

func testSchema() memory.Schema {
	return memory.Schema{
		domain.KindMaterial: func() domain.Record { return &domain.Material{} },
		domain.KindMFIValue: func() domain.Record { return &domain.MFIValue{} },
	}
}

func withStub(t *testing.T) *testutil.StubConn {
	t.Helper()
	db, conn := testutil.NewStubDB()
	prev := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { sqlOpen = prev })
	return conn
}

func TestTransactionSnapshotsBuckets(t *testing.T) {
	conn := withStub(t)
	store, err := NewStore("", testSchema())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	mat := &domain.Material{Name: "PETG"}
	if err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		_, err := tx.Create(mat)
		return err
	}); err != nil {
		t.Fatalf("transaction: %v", err)
	}
	if _, ok := conn.Buckets[string(domain.KindMaterial)]; !ok {
		t.Fatalf("material bucket not snapshotted, have %v", keys(conn.Buckets))
	}
}

func TestNewStoreHydratesFromExistingSnapshot(t *testing.T) {
	withStub(t)
	first, err := NewStore("", testSchema())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	mfi := domain.NewMFIValue("mat-1")
	mfi.MFIGramsPer10Min = 12.5
	if err := first.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		_, err := tx.Create(mfi)
		return err
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	second, err := NewStore("", testSchema())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := second.Get(domain.KindMFIValue, mfi.RecordID())
	if !ok {
		t.Fatalf("record not hydrated from snapshot")
	}
	if got.(*domain.MFIValue).MFIGramsPer10Min != 12.5 {
		t.Fatalf("field lost in hydration: %+v", got)
	}
}

func TestFailedPingSurfaces(t *testing.T) {
	conn := withStub(t)
	conn.FailPing = true
	if _, err := NewStore("", testSchema()); err == nil {
		t.Fatalf("expected ping failure to surface")
	}
}

func TestFailedCommitSurfacesFromTransaction(t *testing.T) {
	conn := withStub(t)
	store, err := NewStore("", testSchema())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	conn.FailCommit = true
	err = store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		_, err := tx.Create(&domain.Material{Name: "x"})
		return err
	})
	if err == nil {
		t.Fatalf("expected commit failure to surface")
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
