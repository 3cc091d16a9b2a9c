package docstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Backend is the injected store client. Exactly one of its handles is set.
type Backend struct {
	mongo  *mongo.Database
	pool   *pgxpool.Pool
	memory *Memory
}

// NewMongoBackend serves collections from a MongoDB database.
func NewMongoBackend(db *mongo.Database) *Backend {
	return &Backend{mongo: db}
}

// NewPostgresBackend serves collections from the JSONB documents table.
func NewPostgresBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{pool: pool}
}

// NewMemoryBackend serves collections from process memory.
func NewMemoryBackend() *Backend {
	return &Backend{memory: NewMemory()}
}

// Name identifies the backend in logs and readiness output.
func (b *Backend) Name() string {
	switch {
	case b.mongo != nil:
		return "mongo"
	case b.pool != nil:
		return "postgres"
	default:
		return "memory"
	}
}

// Ping verifies connectivity to the underlying database.
func (b *Backend) Ping(ctx context.Context) error {
	switch {
	case b.mongo != nil:
		return b.mongo.Client().Ping(ctx, nil)
	case b.pool != nil:
		return b.pool.Ping(ctx)
	default:
		return nil
	}
}

// Open returns the typed collection called name on b.
func Open[T any](b *Backend, name string) Collection[T] {
	switch {
	case b.mongo != nil:
		return NewMongoCollection[T](b.mongo, name)
	case b.pool != nil:
		return NewPostgresCollection[T](b.pool, name)
	default:
		if b.memory == nil {
			b.memory = NewMemory()
		}
		return NewMemoryCollection[T](b.memory, name)
	}
}
