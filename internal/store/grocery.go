package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mstead/pantry/internal/model"
)

// GroceryStore persists the active grocery list and the purchase history.
// Every mutation is committed before the method returns; suggestion and
// reminder code only ever reads through ListItems/ListHistory.
type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

// --- Item methods ---

func scanItem(scanner interface{ Scan(...any) error }) (*model.GroceryItem, error) {
	var item model.GroceryItem
	var expiry sql.NullString

	err := scanner.Scan(&item.ID, &item.Name, &item.Unit, &item.Category, &expiry, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	if expiry.Valid {
		d, err := model.ParseDate(expiry.String)
		if err != nil {
			return nil, err
		}
		item.ExpiryDate = &d
	}
	return &item, nil
}

const itemCols = `id, name, unit, category, expiry_date, created_at`

// ListItems returns the active list in insertion order.
func (s *GroceryStore) ListItems() ([]model.GroceryItem, error) {
	rows, err := s.db.Query(`SELECT ` + itemCols + ` FROM grocery_items ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.GroceryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// AddItem appends an item to the active list. Name and unit are required;
// a name already on the list (case-insensitive) is rejected with ErrDuplicate.
// The returned item is built from the inserted values rather than read back,
// so a committed insert is always reported as a success.
func (s *GroceryStore) AddItem(name, unit, category string, expiry *model.Date) (*model.GroceryItem, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if unit == "" {
		return nil, &ValidationError{Field: "unit"}
	}

	var expiryStr sql.NullString
	if expiry != nil {
		expiryStr = sql.NullString{String: expiry.String(), Valid: true}
	}

	createdAt := time.Now().UTC()
	result, err := s.db.Exec(
		`INSERT INTO grocery_items (name, unit, category, expiry_date, created_at) VALUES (?, ?, ?, ?, ?)`,
		name, unit, category, expiryStr, createdAt,
	)
	if err != nil {
		// The unique index on name collides under NOCASE.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &model.GroceryItem{
		ID:         id,
		Name:       name,
		Unit:       unit,
		Category:   category,
		ExpiryDate: expiry,
		CreatedAt:  createdAt,
	}, nil
}

// RemoveItem deletes the item with exactly this name. Matching is
// case-sensitive: removal addresses one specific entry, unlike the
// duplicate check on add.
func (s *GroceryStore) RemoveItem(name string) error {
	result, err := s.db.Exec(`DELETE FROM grocery_items WHERE name = ? COLLATE BINARY`, name)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Purchase history methods ---

// PurchaseAll records every item on the active list as purchased at the given
// time and clears the list, all in one transaction. History names are stored
// lower-cased so the same item bought under different spellings shares a
// record, and timestamps never move backwards. Returns the number of items
// purchased.
func (s *GroceryStore) PurchaseAll(now time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT name FROM grocery_items`)
	if err != nil {
		return 0, fmt.Errorf("list names: %w", err)
	}

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	for _, name := range names {
		_, err := tx.Exec(
			`INSERT INTO purchase_history (name, last_purchased_at) VALUES (?, ?)
			 ON CONFLICT(name) DO UPDATE SET last_purchased_at = MAX(last_purchased_at, excluded.last_purchased_at)`,
			strings.ToLower(name), now,
		)
		if err != nil {
			return 0, fmt.Errorf("record purchase: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM grocery_items`); err != nil {
		return 0, fmt.Errorf("clear list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purchase: %w", err)
	}
	return int64(len(names)), nil
}

// ListHistory returns all purchase records, ordered by name.
func (s *GroceryStore) ListHistory() ([]model.PurchaseRecord, error) {
	rows, err := s.db.Query(`SELECT name, last_purchased_at FROM purchase_history ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var records []model.PurchaseRecord
	for rows.Next() {
		var rec model.PurchaseRecord
		if err := rows.Scan(&rec.Name, &rec.LastPurchasedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
