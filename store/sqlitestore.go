package store

import (
	"database/sql"
	"fmt"
	"github.com/gostonefire/productmap/crt"
	"github.com/gostonefire/productmap/internal/model"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"os"
)

// sqliteSchema - The state is kept in one single row meta table and one slots table where only
// used slots (occupied or tombstone) have rows
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS map_state (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	size            INTEGER NOT NULL,
	count           INTEGER NOT NULL,
	collision_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS slots (
	slot_index  INTEGER PRIMARY KEY,
	code        TEXT    NOT NULL,
	name        TEXT    NOT NULL,
	price       REAL    NOT NULL,
	quantity    INTEGER NOT NULL,
	description TEXT    NOT NULL,
	is_deleted  INTEGER NOT NULL
);`

// SQLiteStore - Persists the product map state in a SQLite database file.
// Collision logs are not persisted by this implementation, they are optional in the state document
// and a map restored from a SQLiteStore starts with an empty collision log.
type SQLiteStore struct {
	filePath string
	log      *zap.Logger
}

// NewSQLiteStore - Returns a pointer to a new SQLiteStore instance
//   - filePath is the path to the database file, it doesn't have to exist yet
//   - log is an optional structured logger, if nil logging is disabled
func NewSQLiteStore(filePath string, log *zap.Logger) *SQLiteStore {
	if log == nil {
		log = zap.NewNop()
	}

	return &SQLiteStore{
		filePath: filePath,
		log:      log,
	}
}

// Save - Persists a state document, replacing any previously persisted state.
// The replace happens in one transaction, hence a failed save leaves any previously persisted
// state intact.
//   - doc is the state document to persist
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SQLiteStore) Save(doc model.Document) (err error) {
	db, err := sql.Open("sqlite3", S.filePath)
	if err != nil {
		err = fmt.Errorf("error while opening database file: %s", err)
		return
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	_, err = db.Exec(sqliteSchema)
	if err != nil {
		err = fmt.Errorf("error while creating database schema: %s", err)
		return
	}

	tx, err := db.Begin()
	if err != nil {
		err = fmt.Errorf("error while starting transaction: %s", err)
		return
	}
	defer func(tx *sql.Tx) { _ = tx.Rollback() }(tx)

	_, err = tx.Exec(`DELETE FROM slots; DELETE FROM map_state;`)
	if err != nil {
		err = fmt.Errorf("error while clearing previous state: %s", err)
		return
	}

	_, err = tx.Exec(`INSERT INTO map_state (id, size, count, collision_count) VALUES (1, ?, ?, ?)`,
		doc.Size, doc.Count, doc.CollisionCount)
	if err != nil {
		err = fmt.Errorf("error while writing map state: %s", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO slots (slot_index, code, name, price, quantity, description, is_deleted) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		err = fmt.Errorf("error while preparing slot insert: %s", err)
		return
	}
	defer func(stmt *sql.Stmt) { _ = stmt.Close() }(stmt)

	for i, entry := range doc.Table {
		if entry == nil {
			continue
		}

		_, err = stmt.Exec(i, entry.Product.Code, entry.Product.Name, entry.Product.Price,
			entry.Product.Quantity, entry.Product.Description, entry.IsDeleted)
		if err != nil {
			err = fmt.Errorf("error while writing slot %d: %s", i, err)
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = fmt.Errorf("error while committing state: %s", err)
		return
	}

	S.log.Info("state saved",
		zap.String("path", S.filePath),
		zap.Int64("slots", doc.Size),
	)

	return
}

// Load - Reads back the persisted state document.
//   - doc is the state document read from the database
//   - err is of type crt.CorruptState if the database fails shape validation, otherwise a standard error
func (S *SQLiteStore) Load() (doc model.Document, err error) {
	if !S.Exists() {
		err = fmt.Errorf("database file not found")
		return
	}

	db, err := sql.Open("sqlite3", S.filePath)
	if err != nil {
		err = fmt.Errorf("error while opening database file: %s", err)
		return
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	err = db.QueryRow(`SELECT size, count, collision_count FROM map_state WHERE id = 1`).
		Scan(&doc.Size, &doc.Count, &doc.CollisionCount)
	if err != nil {
		S.log.Warn("database rejected", zap.String("path", S.filePath), zap.String("reason", "missing map state"))
		doc = model.Document{}
		err = crt.CorruptState{}
		return
	}

	if doc.Size <= 0 {
		doc = model.Document{}
		err = crt.CorruptState{}
		return
	}

	doc.Table = make([]*model.DocumentSlot, doc.Size)

	rows, err := db.Query(`SELECT slot_index, code, name, price, quantity, description, is_deleted FROM slots ORDER BY slot_index`)
	if err != nil {
		err = fmt.Errorf("error while reading slots: %s", err)
		doc = model.Document{}
		return
	}
	defer func(rows *sql.Rows) { _ = rows.Close() }(rows)

	for rows.Next() {
		var slotIndex int64
		entry := &model.DocumentSlot{}

		err = rows.Scan(&slotIndex, &entry.Product.Code, &entry.Product.Name, &entry.Product.Price,
			&entry.Product.Quantity, &entry.Product.Description, &entry.IsDeleted)
		if err != nil {
			err = fmt.Errorf("error while scanning slot row: %s", err)
			doc = model.Document{}
			return
		}

		if slotIndex < 0 || slotIndex >= doc.Size {
			S.log.Warn("database rejected", zap.String("path", S.filePath), zap.String("reason", "slot index out of range"))
			doc = model.Document{}
			err = crt.CorruptState{}
			return
		}

		doc.Table[slotIndex] = entry
	}

	if rows.Err() != nil {
		err = fmt.Errorf("error while iterating slot rows: %s", rows.Err())
		doc = model.Document{}
		return
	}

	S.log.Info("state loaded", zap.String("path", S.filePath), zap.Int64("slots", doc.Size))

	return
}

// Exists - Returns whether there is a persisted state to load
func (S *SQLiteStore) Exists() bool {
	stat, err := os.Stat(S.filePath)

	return err == nil && !stat.IsDir()
}

// Delete - Removes the database file if it exists
func (S *SQLiteStore) Delete() (err error) {
	// Only try to remove if exists, and is not by accident a directory (could happen when testing things out)
	if stat, ok := os.Stat(S.filePath); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(S.filePath)
			if err != nil {
				err = fmt.Errorf("error while removing database file: %s", err)
				return
			}
		}
	}

	return
}
