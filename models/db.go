package models

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// DBPathEnvVar overrides the on-disk database location.
const DBPathEnvVar = "DOCSITE_DB_PATH"

const defaultDBPath = "./data/docsite.ddb"

var (
	memDB    *sql.DB      // In-memory cache for fast reads
	diskDB   *sql.DB      // Persistent storage
	dbMu     sync.RWMutex // Protect concurrent access during writes
	diskPath string
)

// InitDB initializes the memory and disk databases, runs migrations,
// and loads existing disk data into the memory cache.
func InitDB() error {
	path := os.Getenv(DBPathEnvVar)
	if path == "" {
		path = defaultDBPath
	}
	return initDBAt(path, true)
}

// InitTestDB initializes the databases at an explicit path with the
// background sync worker disabled. Intended for tests.
func InitTestDB(path string) error {
	return initDBAt(path, false)
}

func initDBAt(path string, startWorker bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return serr.Wrap(err, "failed to create data directory")
	}

	var err error
	diskPath = path

	diskDB, err = sql.Open("duckdb", path)
	if err != nil {
		return serr.Wrap(err, "failed to open disk database")
	}

	// DuckDB's go driver uses the empty string for in-memory databases
	memDB, err = sql.Open("duckdb", "")
	if err != nil {
		return serr.Wrap(err, "failed to open memory database")
	}

	if err := migrateBoth(); err != nil {
		return serr.Wrap(err, "failed to migrate databases")
	}

	if err := syncDiskToMemory(); err != nil {
		return serr.Wrap(err, "failed to sync data to memory")
	}

	if err := SeedHeroSettings(); err != nil {
		return serr.Wrap(err, "failed to seed hero settings")
	}

	if startWorker {
		go startSyncWorker()
	}

	return nil
}

// CloseDB closes both database connections
func CloseDB() {
	if memDB != nil {
		memDB.Close()
	}
	if diskDB != nil {
		diskDB.Close()
	}
}

// migrationDDL lists each table's DDL, defined next to its model.
var migrationDDL = []string{
	CreateDocsTableSQL,
	CreateRevisionsTableSQL,
	CreateHeroSettingsTableSQL,
	CreateUsersTableSQL,
}

// migrateBoth runs migrations on both databases
func migrateBoth() error {
	if err := migrateDB(diskDB); err != nil {
		return serr.Wrap(err, "disk migration failed")
	}
	if err := migrateDB(memDB); err != nil {
		return serr.Wrap(err, "memory migration failed")
	}
	return nil
}

func migrateDB(db *sql.DB) error {
	for _, ddl := range migrationDDL {
		if _, err := db.Exec(ddl); err != nil {
			return serr.Wrap(err, "migration statement failed")
		}
	}
	return nil
}

var syncTables = []string{"users", "docs", "doc_revisions", "hero_settings"}

// syncDiskToMemory loads all data from disk into the memory cache
func syncDiskToMemory() error {
	// Use ATTACH to efficiently copy data
	query := `
		ATTACH '` + diskPath + `' AS disk_db;
		INSERT OR IGNORE INTO users SELECT * FROM disk_db.users;
		INSERT OR IGNORE INTO docs SELECT * FROM disk_db.docs;
		INSERT OR IGNORE INTO doc_revisions SELECT * FROM disk_db.doc_revisions;
		INSERT OR IGNORE INTO hero_settings SELECT * FROM disk_db.hero_settings;
		DETACH disk_db;
	`

	_, err := memDB.Exec(query)
	if err != nil {
		// If attach doesn't work, fall back to manual copy
		logger.LogErr(err, "ATTACH failed, falling back to manual sync")
		return manualSync()
	}

	logger.Info("Synced disk data to memory cache")
	return nil
}

// manualSync performs manual table-by-table sync
func manualSync() error {
	for _, table := range syncTables {
		rows, err := diskDB.Query("SELECT * FROM " + table)
		if err != nil {
			logger.LogErr(err, "failed to read from disk", "table", table)
			continue
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			continue
		}

		placeholders := ""
		for i := range cols {
			if i > 0 {
				placeholders += ","
			}
			placeholders += "?"
		}

		stmt, err := memDB.Prepare(
			"INSERT OR IGNORE INTO " + table + " VALUES (" + placeholders + ")")
		if err != nil {
			rows.Close()
			logger.LogErr(err, "failed to prepare insert", "table", table)
			continue
		}

		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		for rows.Next() {
			if err := rows.Scan(valuePtrs...); err != nil {
				continue
			}
			if _, err := stmt.Exec(values...); err != nil {
				logger.LogErr(err, "failed to insert into memory", "table", table)
			}
		}

		stmt.Close()
		rows.Close()
	}

	return nil
}

// WriteThrough writes to both databases ensuring consistency
func WriteThrough(query string, args ...interface{}) error {
	dbMu.Lock()
	defer dbMu.Unlock()

	// Write to disk first for durability
	_, err := diskDB.Exec(query, args...)
	if err != nil {
		return serr.Wrap(err, "failed to write to disk")
	}

	// Then update memory cache
	_, err = memDB.Exec(query, args...)
	if err != nil {
		// Log error but don't fail - disk write succeeded
		logger.LogErr(err, "failed to update memory cache")
		markCacheDirty()
	}

	return nil
}

// ReadFromCache performs fast reads from memory
func ReadFromCache(query string, args ...interface{}) (*sql.Rows, error) {
	dbMu.RLock()
	defer dbMu.RUnlock()

	rows, err := memDB.Query(query, args...)
	if err != nil {
		// Fallback to disk on cache miss
		logger.LogErr(err, "cache read failed, falling back to disk")
		return diskDB.Query(query, args...)
	}

	return rows, nil
}

// QueryRowFromCache performs a single row query from cache
func QueryRowFromCache(query string, args ...interface{}) *sql.Row {
	dbMu.RLock()
	defer dbMu.RUnlock()

	return memDB.QueryRow(query, args...)
}

// DualTx wraps a transaction spanning both databases
type DualTx struct {
	diskTx    *sql.Tx
	memTx     *sql.Tx
	committed bool // Track commit to prevent double unlock
}

// BeginDualTx starts a transaction on both databases
func BeginDualTx() (*DualTx, error) {
	dbMu.Lock()

	diskTx, err := diskDB.Begin()
	if err != nil {
		dbMu.Unlock()
		return nil, serr.Wrap(err, "failed to begin disk transaction")
	}

	memTx, err := memDB.Begin()
	if err != nil {
		diskTx.Rollback()
		dbMu.Unlock()
		return nil, serr.Wrap(err, "failed to begin memory transaction")
	}

	return &DualTx{
		diskTx: diskTx,
		memTx:  memTx,
	}, nil
}

// Exec executes the query on both transactions
func (dt *DualTx) Exec(query string, args ...interface{}) error {
	// Disk first
	if _, err := dt.diskTx.Exec(query, args...); err != nil {
		return err
	}

	if _, err := dt.memTx.Exec(query, args...); err != nil {
		// Log but don't fail
		logger.LogErr(err, "memory tx exec failed")
	}

	return nil
}

// Commit commits both transactions
func (dt *DualTx) Commit() error {
	defer func() {
		dt.committed = true
		dbMu.Unlock()
	}()

	if err := dt.diskTx.Commit(); err != nil {
		dt.memTx.Rollback()
		return serr.Wrap(err, "failed to commit disk transaction")
	}

	if err := dt.memTx.Commit(); err != nil {
		logger.LogErr(err, "failed to commit memory transaction")
		markCacheDirty()
	}

	return nil
}

// Rollback rolls back both transactions
func (dt *DualTx) Rollback() error {
	// Commit unlocks the mutex, so only unlock here if we haven't committed
	if !dt.committed {
		defer dbMu.Unlock()
	}

	dt.diskTx.Rollback()
	dt.memTx.Rollback()

	return nil
}

// Cache management
var (
	cacheDirty bool
	cacheMu    sync.Mutex
)

func markCacheDirty() {
	cacheMu.Lock()
	cacheDirty = true
	cacheMu.Unlock()
}

func isCacheDirty() bool {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return cacheDirty
}

// startSyncWorker periodically checks cache consistency
func startSyncWorker() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if isCacheDirty() {
			logger.Info("Cache marked dirty, resyncing...")
			if err := resyncCache(); err != nil {
				logger.LogErr(err, "failed to resync cache")
			} else {
				cacheMu.Lock()
				cacheDirty = false
				cacheMu.Unlock()
			}
		}
	}
}

// resyncCache rebuilds the memory cache from disk
func resyncCache() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	for _, table := range syncTables {
		_, _ = memDB.Exec("DELETE FROM " + table)
	}

	return manualSync()
}
