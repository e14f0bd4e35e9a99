package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/todo-labs/todo-backend/internal/items/domain"
)

// PostgresStore pushes filtering, ordering and pagination into SQL. The
// seq column is a serial used as the tie-break for equal created_at
// values, mirroring insertion order.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an open connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, item *domain.Item) error {
	const q = `
insert into items (id, text, is_done, created_at, updated_at)
values ($1, $2, $3, $4, $5);
`
	_, err := s.db.ExecContext(ctx, q, item.ID, item.Text, item.IsDone, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	const q = `
select id, text, is_done, created_at, updated_at
from items
where id = $1;
`
	var item domain.Item
	err := s.db.QueryRowContext(ctx, q, id).
		Scan(&item.ID, &item.Text, &item.IsDone, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	return &item, nil
}

func (s *PostgresStore) Update(ctx context.Context, item *domain.Item) error {
	const q = `
update items
set text = $2, is_done = $3, updated_at = $4
where id = $1;
`
	ct, err := s.db.ExecContext(ctx, q, item.ID, item.Text, item.IsDone, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	n, err := ct.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `delete from items where id = $1;`
	ct, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := ct.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Item, error) {
	q := `
select id, text, is_done, created_at, updated_at
from items
where ($1::boolean is null or is_done = $1)
  and ($2::text is null or position(lower($2) in lower(text)) > 0)
order by created_at desc, seq asc
limit $3 offset $4;
`
	var isDone sql.NullBool
	if filter.IsDone != nil {
		isDone = sql.NullBool{Bool: *filter.IsDone, Valid: true}
	}
	var search sql.NullString
	if filter.Search != "" {
		search = sql.NullString{String: filter.Search, Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, q, isDone, search, filter.Limit, filter.Skip)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Item, 0, filter.Limit)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Text, &item.IsDone, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Counts(ctx context.Context) (int, int, error) {
	const q = `
select count(*), count(*) filter (where is_done)
from items;
`
	var total, completed int
	if err := s.db.QueryRowContext(ctx, q).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("count items: %w", err)
	}
	return total, completed, nil
}
