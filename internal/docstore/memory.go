package docstore

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/warehouse-service/internal/query"
)

// Memory is an in-process document database. Documents are kept as BSON snapshots so
// reads never alias caller memory and datetimes get the same millisecond precision as
// MongoDB.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memoryData
}

type memoryData struct {
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]bson.Raw
}

// NewMemory returns an empty in-memory database.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memoryData)}
}

func (m *Memory) data(name string) *memoryData {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.collections[name]
	if !ok {
		d = &memoryData{docs: make(map[primitive.ObjectID]bson.Raw)}
		m.collections[name] = d
	}
	return d
}

type memoryCollection[T any] struct {
	db   *Memory
	data *memoryData
}

// NewMemoryCollection returns the named collection of db.
func NewMemoryCollection[T any](db *Memory, name string) Collection[T] {
	return &memoryCollection[T]{db: db, data: db.data(name)}
}

func (c *memoryCollection[T]) Insert(_ context.Context, doc *T) error {
	id, err := documentID(doc)
	if err != nil {
		return err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	if _, exists := c.data.docs[id]; exists {
		return fmt.Errorf("duplicate _id %s", id.Hex())
	}
	c.data.docs[id] = raw
	c.data.order = append(c.data.order, id)
	return nil
}

func (c *memoryCollection[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	c.db.mu.RLock()
	raw, ok := c.data.docs[id]
	c.db.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode[T](raw)
}

func (c *memoryCollection[T]) Find(_ context.Context, filter Fields, limit query.Limit) ([]T, error) {
	matcher, err := newMatcher(filter)
	if err != nil {
		return nil, err
	}

	c.db.mu.RLock()
	matched := make([]bson.Raw, 0, len(c.data.order))
	for _, id := range c.data.order {
		if raw := c.data.docs[id]; matcher.match(raw) {
			matched = append(matched, raw)
		}
	}
	c.db.mu.RUnlock()

	matched = query.Apply(matched, limit)
	result := make([]T, 0, len(matched))
	for _, raw := range matched {
		doc, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		result = append(result, *doc)
	}
	return result, nil
}

func (c *memoryCollection[T]) FindOne(ctx context.Context, filter Fields) (*T, error) {
	docs, err := c.Find(ctx, filter, query.LimitOf(1))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return &docs[0], nil
}

func (c *memoryCollection[T]) UpdateByID(_ context.Context, id primitive.ObjectID, set Fields) (*T, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	raw, ok := c.data.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	for k, v := range set {
		if k == "_id" {
			continue
		}
		fields[k] = v
	}
	updated, err := bson.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	doc, err := decode[T](updated)
	if err != nil {
		return nil, err
	}
	c.data.docs[id] = updated
	return doc, nil
}

func (c *memoryCollection[T]) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	if _, ok := c.data.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.data.docs, id)
	for i, existing := range c.data.order {
		if existing == id {
			c.data.order = append(c.data.order[:i], c.data.order[i+1:]...)
			break
		}
	}
	return nil
}

func decode[T any](raw bson.Raw) (*T, error) {
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// matcher compares stored fields against the BSON encoding of the filter values, so
// equality is type-exact the same way a MongoDB equality filter is for ObjectIDs.
type matcher map[string]bson.RawValue

func newMatcher(filter Fields) (matcher, error) {
	m := make(matcher, len(filter))
	for key, val := range filter {
		typ, data, err := bson.MarshalValue(val)
		if err != nil {
			return nil, fmt.Errorf("encode filter %s: %w", key, err)
		}
		m[key] = bson.RawValue{Type: typ, Value: data}
	}
	return m, nil
}

func (m matcher) match(raw bson.Raw) bool {
	for key, want := range m {
		got, err := raw.LookupErr(key)
		if err != nil {
			return false
		}
		if got.Type != want.Type || !bytes.Equal(got.Value, want.Value) {
			return false
		}
	}
	return true
}
