package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher emits roster change events to interested consumers.
type Publisher interface {
	PublishRosterChanged(ctx context.Context, event RosterChanged) error
	Close() error
}

// NoopPublisher is wired when no brokers are configured.
type NoopPublisher struct{}

// PublishRosterChanged implements Publisher.
func (NoopPublisher) PublishRosterChanged(ctx context.Context, event RosterChanged) error {
	return nil
}

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }

// KafkaPublisher writes roster events to Kafka, lazily managing writers per topic.
type KafkaPublisher struct {
	brokers []string
	topic   string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher targeting the given topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		topic:   topic,
		writers: make(map[string]*kafka.Writer),
	}
}

// PublishRosterChanged serializes the event and writes it keyed by activity,
// so all changes to one roster land on the same partition.
func (p *KafkaPublisher) PublishRosterChanged(ctx context.Context, event RosterChanged) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal roster event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster.changed")},
			{Key: "action", Value: []byte(event.Action)},
		},
	}

	writer := p.writerForTopic(p.topic)
	return writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
