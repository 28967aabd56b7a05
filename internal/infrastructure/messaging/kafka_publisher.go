package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"revolux/internal/usecase/interfaces"

	kafkaGo "github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafka-go's Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// KafkaPublisher publishes JSON events to Kafka, one writer per topic.
type KafkaPublisher struct {
	brokers []string

	mu        sync.Mutex
	writers   map[string]messageWriter
	newWriter func(topic string) messageWriter
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	p := &KafkaPublisher{
		brokers: brokers,
		writers: map[string]messageWriter{},
	}
	p.newWriter = func(topic string) messageWriter {
		return &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(p.brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
	}
	return p
}

// ParseBrokers splits a comma-separated KAFKA_BROKERS value.
func ParseBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (p *KafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	w := p.writer(topic)
	if err := w.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	}); err != nil {
		log.Printf("[order][messaging] publish failed topic=%s key=%s err=%v", topic, key, err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) writer(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.writers[topic]; ok {
		return w
	}
	w := p.newWriter(topic)
	p.writers[topic] = w
	return w
}

// Close flushes and closes every topic writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close writer %s: %w", topic, err)
		}
		delete(p.writers, topic)
	}
	return firstErr
}
