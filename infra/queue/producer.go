package queue

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" || topic == "" {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}

	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: username,
				Password: password,
			},
			TLS: &tls.Config{},
		}
	}

	return &Producer{writer: writer}
}

// PublishMessage is nil-safe: when the broker is not configured, events are
// skipped rather than failing the request that produced them.
func (p *Producer) PublishMessage(key, value []byte) error {
	if p == nil || p.writer == nil {
		log.Println("Kafka producer not ready - skip publish")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}
