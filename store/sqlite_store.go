package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	models "cart-manager/model"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations.sql
var migrationSQL string

// the single-user cart always lives in row 1
const cartID = 1

// SQLiteStore keeps the cart in a single SQLite database file.
type SQLiteStore struct {
	DB   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	DB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := DB.Ping(); err != nil {
		_ = DB.Close()
		return nil, err
	}
	if _, err := DB.Exec(migrationSQL); err != nil {
		_ = DB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &SQLiteStore{DB: DB, path: path}, nil
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error { return s.DB.Close() }

// Save replaces the stored snapshot in a single transaction.
func (s *SQLiteStore) Save(items []models.Item) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	// returns sql.ErrTxDone after a successful Commit
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO carts (id, saved_at) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET saved_at = excluded.saved_at
	`, cartID, time.Now().UTC()); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID); err != nil {
		return err
	}

	for pos, it := range items {
		if _, err := tx.Exec(
			`INSERT INTO cart_items (cart_id, position, kind, name, type, count, weight) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			cartID, pos, int64(it.Kind), it.Name, it.Type, it.Count, it.Weight,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Load() ([]models.Item, error) {
	var id int64
	err := s.DB.QueryRow(`SELECT id FROM carts WHERE id = ?`, cartID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, s.path)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(`SELECT kind, name, type, count, weight FROM cart_items WHERE cart_id = ? ORDER BY position`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Item{}
	for rows.Next() {
		var (
			kind int64
			it   models.Item
		)
		if err := rows.Scan(&kind, &it.Name, &it.Type, &it.Count, &it.Weight); err != nil {
			return nil, err
		}
		it.Kind = models.Kind(kind)
		if kind < 0 || kind > 255 || !it.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown item kind %d at position %d", ErrCorrupt, kind, len(out))
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
