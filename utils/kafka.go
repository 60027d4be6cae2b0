package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/eventgate/ticketing-backend/config"
)

var auditWriter *kafka.Writer

// InitKafka wires the audit event writer. Kafka being down is not fatal:
// audit callers fall back to writing the log row directly.
func InitKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("⚠️ KAFKA_BROKERS not set, audit events will be persisted synchronously")
		return
	}

	auditWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaAuditTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	log.Printf("✅ Kafka audit writer ready (topic=%s)", cfg.KafkaAuditTopic)
}

// KafkaEnabled reports whether audit events flow through Kafka
func KafkaEnabled() bool {
	return auditWriter != nil
}

// PublishAuditEvent sends one audit event to the audit topic
func PublishAuditEvent(ctx context.Context, key string, payload []byte) error {
	if auditWriter == nil {
		return nil
	}
	return auditWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// NewAuditReader builds the consumer-side reader for the audit topic
func NewAuditReader(cfg *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		Topic:    cfg.KafkaAuditTopic,
		GroupID:  "ticketing-audit-consumer",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// CloseKafka flushes and closes the writer on shutdown
func CloseKafka() {
	if auditWriter != nil {
		if err := auditWriter.Close(); err != nil {
			log.Printf("⚠️ Kafka writer close error: %v", err)
		}
	}
}
