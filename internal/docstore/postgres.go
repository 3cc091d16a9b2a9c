package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/warehouse-service/internal/query"
)

// PgxQuerier is the subset of *pgxpool.Pool used by the Postgres collections.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresCollection stores documents as JSONB rows of the shared documents table.
// Filters use JSONB containment, so field names are the JSON names of T.
type postgresCollection[T any] struct {
	db   PgxQuerier
	name string
}

// NewPostgresCollection returns the named collection backed by the documents table.
func NewPostgresCollection[T any](db PgxQuerier, name string) Collection[T] {
	return &postgresCollection[T]{db: db, name: name}
}

func (c *postgresCollection[T]) Insert(ctx context.Context, doc *T) error {
	id, err := documentID(doc)
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	const q = `
        INSERT INTO documents (collection, id, body)
        VALUES ($1, $2, $3::jsonb)`
	if _, err := c.db.Exec(ctx, q, c.name, id.Hex(), string(body)); err != nil {
		return fmt.Errorf("insert into %s: %w", c.name, err)
	}
	return nil
}

func (c *postgresCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	const q = `SELECT body FROM documents WHERE collection=$1 AND id=$2`

	var body []byte
	if err := c.db.QueryRow(ctx, q, c.name, id.Hex()).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s by id: %w", c.name, err)
	}
	return decodeJSON[T](body)
}

func (c *postgresCollection[T]) Find(ctx context.Context, filter Fields, limit query.Limit) ([]T, error) {
	result := make([]T, 0)
	if limit.Empty() {
		return result, nil
	}

	containment, err := filterJSON(filter)
	if err != nil {
		return nil, err
	}
	q := `
        SELECT body FROM documents
        WHERE collection=$1 AND body @> $2::jsonb
        ORDER BY seq`
	if n, ok := limit.Value(); ok {
		q += fmt.Sprintf(" LIMIT %d", n)
	}

	rows, err := c.db.Query(ctx, q, c.name, containment)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		doc, err := decodeJSON[T](body)
		if err != nil {
			return nil, err
		}
		result = append(result, *doc)
	}
	return result, rows.Err()
}

func (c *postgresCollection[T]) FindOne(ctx context.Context, filter Fields) (*T, error) {
	docs, err := c.Find(ctx, filter, query.LimitOf(1))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

func (c *postgresCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set Fields) (*T, error) {
	patch := make(Fields, len(set))
	for k, v := range set {
		if k != "_id" && k != "id" {
			patch[k] = v
		}
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}

	const q = `
        UPDATE documents SET body = body || $3::jsonb
        WHERE collection=$1 AND id=$2
        RETURNING body`

	var body []byte
	if err := c.db.QueryRow(ctx, q, c.name, id.Hex(), string(patchJSON)).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", c.name, err)
	}
	return decodeJSON[T](body)
}

func (c *postgresCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	const q = `DELETE FROM documents WHERE collection=$1 AND id=$2`

	cmd, err := c.db.Exec(ctx, q, c.name, id.Hex())
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.name, err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func filterJSON(filter Fields) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	out, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("encode filter: %w", err)
	}
	return string(out), nil
}

func decodeJSON[T any](body []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}
