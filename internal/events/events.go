package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"integraservicios/internal/config"
)

// Event types.
const (
	ReservationCreated       = "reservation.created"
	ReservationStatusChanged = "reservation.status_changed"
	ReservationDeleted       = "reservation.deleted"
	LoanRegistered           = "loan.registered"
	ReturnRegistered         = "return.registered"
)

// Event is one activity record.
type Event struct {
	Type       string                 `json:"type"`
	EntityID   uint                   `json:"entity_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

// New builds an event stamped with the current time.
func New(eventType string, entityID uint, payload map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher delivers activity events. Implementations never make the caller's operation fail.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

// NewPublisher returns a Kafka publisher when brokers are configured, a no-op publisher otherwise.
func NewPublisher(cfg config.Kafka, log *zap.Logger) (Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return NopPublisher{}, nil
	}
	producer, err := NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	return NewKafkaPublisher(producer, cfg.Topic, log), nil
}

// NewProducer creates a synchronous producer waiting for all in-sync replicas.
func NewProducer(cfg config.Kafka) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Brokers, defaultCfg)
}

// KafkaPublisher writes events as JSON keyed by entity id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

// NewKafkaPublisher wraps an existing producer.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

// Publish sends the event, logging delivery failures.
func (p *KafkaPublisher) Publish(_ context.Context, event Event) {
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(event.EntityID), 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(event.Type)},
		},
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("publish event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	p.log.Debug("event published",
		zap.String("type", event.Type),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
}

// Close closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

func (NopPublisher) Close() error { return nil }
