package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/query"
	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util/errorutil"
)

// Clock returns the current time. Tests inject a deterministic one.
type Clock func() time.Time

// Dependencies encapsulates what the entity services need.
type Dependencies struct {
	Products   repository.ProductRepository
	Customers  repository.CustomerRepository
	Staff      repository.StaffRepository
	Orders     repository.OrderRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// now returns UTC time at the millisecond precision document stores keep.
func (d Dependencies) now() time.Time {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Millisecond)
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// document is satisfied by pointers to entities embedding domain.Document.
type document[T any] interface {
	*T
	Meta() *domain.Document
}

// lifecycle implements the list/get/create/update/delete flow shared by the
// product, customer and staff services.
type lifecycle[T any, P document[T]] struct {
	deps       Dependencies
	repo       repository.Repository[T]
	collection string
	notFound   string
	created    events.EventType
	updated    events.EventType
	deleted    events.EventType
}

func (l *lifecycle[T, P]) list(ctx context.Context, limit query.Limit) ([]T, error) {
	docs, err := l.repo.List(ctx, limit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return docs, nil
}

func (l *lifecycle[T, P]) get(ctx context.Context, id string) (*T, error) {
	doc, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, l.notFound)
	}
	return doc, nil
}

func (l *lifecycle[T, P]) create(ctx context.Context, doc *T) error {
	stampNew(P(doc).Meta(), l.deps.now())
	if err := l.repo.Create(ctx, doc); err != nil {
		return apperrors.NewInternalError(err)
	}
	l.publish(ctx, l.created, P(doc).Meta().ID, doc)
	return nil
}

// update overwrites the given fields and refreshes updated_at. updated_at never moves
// backwards, even if the clock does.
func (l *lifecycle[T, P]) update(ctx context.Context, id string, fields docstore.Fields) (*T, error) {
	current, err := l.get(ctx, id)
	if err != nil {
		return nil, err
	}
	meta := P(current).Meta()

	set := make(docstore.Fields, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set[domain.FieldUpdatedAt] = latest(l.deps.now(), meta.UpdatedAt, meta.CreatedAt)

	updated, err := l.repo.Update(ctx, id, set)
	if err != nil {
		return nil, mapStoreError(err, l.notFound)
	}
	l.publish(ctx, l.updated, meta.ID, updated)
	return updated, nil
}

func (l *lifecycle[T, P]) delete(ctx context.Context, id string) error {
	oid, err := repository.ParseID(id)
	if err != nil {
		return mapStoreError(err, l.notFound)
	}
	if err := l.repo.Delete(ctx, oid.Hex()); err != nil {
		return mapStoreError(err, l.notFound)
	}
	l.publish(ctx, l.deleted, oid, nil)
	return nil
}

func (l *lifecycle[T, P]) publish(ctx context.Context, eventType events.EventType, id primitive.ObjectID, payload any) {
	publish(ctx, l.deps, events.NewEvent(eventType, l.collection, id.Hex(), l.deps.now(), payload))
}

// publish hands the event to the dispatcher. The mutation is already committed, so a
// failing subscriber is logged and never fails the request.
func publish(ctx context.Context, deps Dependencies, event events.Event) {
	if deps.Dispatcher == nil {
		return
	}
	if err := deps.Dispatcher.Publish(ctx, event); err != nil {
		deps.logger().Warn("event subscriber failed",
			zap.String("event_type", string(event.Type)),
			zap.String("document_id", event.DocumentID),
			zap.Error(err))
	}
}

func stampNew(meta *domain.Document, now time.Time) {
	meta.ID = primitive.NewObjectID()
	meta.CreatedAt = now
	meta.UpdatedAt = now
}

func latest(t time.Time, others ...time.Time) time.Time {
	for _, o := range others {
		if o.After(t) {
			t = o
		}
	}
	return t
}

func mapStoreError(err error, notFound string) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return apperrors.NewNotFound(notFound)
	}
	return apperrors.NewInternalError(err)
}
