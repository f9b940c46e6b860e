package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type table[T any] struct {
	db   *sql.DB
	name string
}

func (t table[T]) list(ctx context.Context) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY seq`, t.name))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s doc: %w", t.name, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return out, nil
}

func (t table[T]) insert(ctx context.Context, id string, item T) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s doc: %w", t.name, err)
	}
	q := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, t.name)
	if _, err := t.db.ExecContext(ctx, q, id, doc); err != nil {
		return fmt.Errorf("insert %s: %w", t.name, err)
	}
	return nil
}

func (t table[T]) replace(ctx context.Context, id string, item T) (bool, error) {
	doc, err := json.Marshal(item)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s doc: %w", t.name, err)
	}
	q := fmt.Sprintf(`UPDATE %s SET doc = $2 WHERE id = $1`, t.name)
	res, err := t.db.ExecContext(ctx, q, id, doc)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", t.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update %s: %w", t.name, err)
	}
	return n > 0, nil
}

func (t table[T]) remove(ctx context.Context, id string) (bool, error) {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name)
	res, err := t.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	return n > 0, nil
}
