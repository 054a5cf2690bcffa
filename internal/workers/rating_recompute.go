package workers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=rating_recompute.go -destination=rating_recompute_mock.go -package=workers

const (
	defaultMaxAttempts = 3
	defaultBackoff     = time.Second
)

// KafkaReader defines a Kafka consumer-group reader abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RatingRecomputer recomputes the stored rating aggregate of a product.
type RatingRecomputer interface {
	RecomputeProductRating(ctx context.Context, productID uuid.UUID) error
}

// RatingRecomputeWorker consumes recompute requests published after a failed inline recompute.
type RatingRecomputeWorker struct {
	reader      KafkaReader
	recomputer  RatingRecomputer
	maxAttempts int
	backoff     time.Duration
}

// Opt configures a RatingRecomputeWorker.
type Opt func(*RatingRecomputeWorker)

// WithMaxAttempts sets how many times a request is tried before it is dropped.
func WithMaxAttempts(n int) Opt {
	return func(w *RatingRecomputeWorker) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// WithBackoff sets the pause between attempts and after fetch errors.
func WithBackoff(d time.Duration) Opt {
	return func(w *RatingRecomputeWorker) {
		w.backoff = d
	}
}

// NewRatingRecomputeWorker creates a new worker.
func NewRatingRecomputeWorker(reader KafkaReader, recomputer RatingRecomputer, opts ...Opt) *RatingRecomputeWorker {
	w := &RatingRecomputeWorker{
		reader:      reader,
		recomputer:  recomputer,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run consumes until ctx is canceled. A message is committed once handled,
// including when it is malformed or every attempt failed.
func (w *RatingRecomputeWorker) Run(ctx context.Context) error {
	logger.Log.Infow("rating recompute worker started")
	defer logger.Log.Infow("rating recompute worker stopped")

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to fetch recompute request", "error", err)
			if !w.sleep(ctx) {
				return nil
			}
			continue
		}

		w.handle(ctx, msg)

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Log.Errorw("failed to commit recompute request", "offset", msg.Offset, "error", err)
		}
	}
}

func (w *RatingRecomputeWorker) handle(ctx context.Context, msg kafka.Message) {
	var req models.RatingRecomputeRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil || req.ProductID == uuid.Nil {
		logger.Log.Warnw("dropping malformed recompute request", "offset", msg.Offset, "error", err)
		return
	}

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		err := w.recomputer.RecomputeProductRating(ctx, req.ProductID)
		if err == nil {
			logger.Log.Infow("deferred rating recompute done", "productID", req.ProductID, "attempt", attempt)
			return
		}
		if errors.Is(err, services.ErrProductNotFound) {
			logger.Log.Warnw("product is gone, dropping recompute request", "productID", req.ProductID, "error", err)
			return
		}

		logger.Log.Errorw("deferred rating recompute failed",
			"productID", req.ProductID, "attempt", attempt, "error", err)
		if attempt < w.maxAttempts && !w.sleep(ctx) {
			return
		}
	}

	logger.Log.Errorw("giving up on rating recompute", "productID", req.ProductID, "attempts", w.maxAttempts)
}

func (w *RatingRecomputeWorker) sleep(ctx context.Context) bool {
	if w.backoff <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(w.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Close closes the underlying reader.
func (w *RatingRecomputeWorker) Close() error {
	return w.reader.Close()
}
