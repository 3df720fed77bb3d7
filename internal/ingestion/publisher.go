package ingestion

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=ingestion

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per ingested source, keyed by source name
type KafkaPublisher struct {
	writer KafkaWriter
}

func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish never fails the ingestion run; errors are logged
func (p *KafkaPublisher) Publish(ctx context.Context, outcome Outcome) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "source", outcome.Source)
		return
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ingestion outcome", "source", outcome.Source, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(outcome.Source),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ingestion outcome", "source", outcome.Source, "error", err)
	} else {
		logger.Log.Infow("Ingestion outcome published", "source", outcome.Source, "created", outcome.Created, "updated", outcome.Updated)
	}
}

// Close releases the underlying writer
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
