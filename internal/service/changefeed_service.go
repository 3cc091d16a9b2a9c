package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/warehouse-service/internal/config"
	"github.com/spec-kit/warehouse-service/internal/events"
)

// ChangeFeedService forwards document change events to a Redis pub/sub channel so
// other systems can follow warehouse mutations.
type ChangeFeedService struct {
	dispatcher events.Dispatcher
	client     *redis.Client
	channel    string
	logger     *zap.Logger
}

// NewChangeFeedService creates the service. A nil client only logs events.
func NewChangeFeedService(dispatcher events.Dispatcher, client *redis.Client, cfg config.RedisConfig, logger *zap.Logger) *ChangeFeedService {
	return &ChangeFeedService{
		dispatcher: dispatcher,
		client:     client,
		channel:    cfg.ChangesChannel,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to every change event.
func (s *ChangeFeedService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.SubscribeAll(s.handleChange)
}

func (s *ChangeFeedService) handleChange(ctx context.Context, event events.Event) error {
	s.logger.Debug("document changed",
		zap.String("event_type", string(event.Type)),
		zap.String("collection", event.Collection),
		zap.String("document_id", event.DocumentID))

	if s.client == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}
	if err := s.client.Publish(ctx, s.channel, body).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}
	return nil
}
