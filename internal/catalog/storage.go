package catalog

import (
	"fmt"
	"os"

	"materialcore/internal/infra/persistence/memory"
	"materialcore/internal/infra/persistence/postgres"
	"materialcore/internal/infra/persistence/sqlite"
	"materialcore/pkg/domain"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenPersistentStore selects a backend using environment variables.
// Defaults to sqlite when unset. The registry supplies the snapshot schema
// for every backend; a nil registry falls back to the built-in kinds.
//
//	MATERIALCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	MATERIALCORE_SQLITE_PATH: path to sqlite file (default ./materialcore.db)
//	MATERIALCORE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenPersistentStore(registry *Registry) (domain.PersistentStore, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	schema := registry.Schema()
	driver := os.Getenv("MATERIALCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(schema), nil
	case StorageSQLite:
		path := os.Getenv("MATERIALCORE_SQLITE_PATH")
		return sqlite.NewStore(path, schema)
	case StoragePostgres:
		dsn := os.Getenv("MATERIALCORE_POSTGRES_DSN")
		return postgres.NewStore(dsn, schema)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
