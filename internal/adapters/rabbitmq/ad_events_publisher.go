package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ad-service/internal/constants"
	"ad-service/internal/contextkeys"
	"ad-service/internal/core/domain"
	"ad-service/internal/core/port"
	"ad-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AdEventDTO — сообщение о событии объявления для других сервисов.
type AdEventDTO struct {
	AdID      string    `json:"ad_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	UserEmail string    `json:"user_email"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type AdEventsPublisherAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewAdEventsPublisherAdapter(producer *rabbitmq_producer.Publisher) (*AdEventsPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &AdEventsPublisherAdapter{producer: producer}, nil
}

func (a *AdEventsPublisherAdapter) PublishAdCreated(ctx context.Context, ad domain.Ad) error {
	return a.publish(ctx, constants.RoutingKeyAdCreated, ad)
}

func (a *AdEventsPublisherAdapter) PublishAdDeleted(ctx context.Context, ad domain.Ad) error {
	return a.publish(ctx, constants.RoutingKeyAdDeleted, ad)
}

func (a *AdEventsPublisherAdapter) publish(ctx context.Context, routingKey string, ad domain.Ad) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "AdEventsPublisherAdapter",
		"routing_key": routingKey,
		"ad_id":       ad.ID.String(),
	})

	dto := AdEventDTO{
		AdID:      ad.ID.String(),
		Category:  string(ad.Category),
		Title:     ad.Title,
		UserEmail: ad.UserEmail,
		UserID:    ad.UserID,
		Timestamp: time.Now().UTC(),
	}

	body, _ := json.Marshal(dto)

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Устанавливаем таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing ad event", nil)
	err := a.producer.Publish(publishCtx, routingKey, msg)
	if err != nil {
		adapterLogger.Error("Failed to publish ad event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event for ad %s: %w", ad.ID, err)
	}

	adapterLogger.Info("Successfully published ad event", nil)
	return nil
}
