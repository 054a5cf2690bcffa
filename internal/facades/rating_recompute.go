package facades

import (
	"context"
	"encoding/json"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RatingRecomputeKafkaFacade publishes rating recompute requests to Kafka.
type RatingRecomputeKafkaFacade struct {
	writer KafkaWriter
}

// NewRatingRecomputeKafkaFacade creates a new facade with a Kafka writer.
func NewRatingRecomputeKafkaFacade(writer KafkaWriter) *RatingRecomputeKafkaFacade {
	return &RatingRecomputeKafkaFacade{writer: writer}
}

// PublishRecompute writes req keyed by product id, so requests for one product stay ordered.
func (f *RatingRecomputeKafkaFacade) PublishRecompute(ctx context.Context, req models.RatingRecomputeRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		logger.Log.Errorw("failed to marshal recompute request", "productID", req.ProductID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(req.ProductID.String()),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish recompute request to Kafka", "productID", req.ProductID, "error", err)
		return err
	}

	logger.Log.Infow("recompute request published to Kafka", "productID", req.ProductID)
	return nil
}

// Close closes the underlying writer.
func (f *RatingRecomputeKafkaFacade) Close() error {
	return f.writer.Close()
}
