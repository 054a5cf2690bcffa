package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Kafka writer ---
type fakeKafkaWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeKafkaWriter) Close() error {
	f.closed = true
	return nil
}

// --- Tests ---
func TestPublishRecompute(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewRatingRecomputeKafkaFacade(writer)

	req := models.RatingRecomputeRequest{
		ProductID:   uuid.New(),
		Reason:      "connection reset",
		RequestedAt: 1700000000,
	}

	err := facade.PublishRecompute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)

	assert.Equal(t, req.ProductID.String(), string(writer.msgs[0].Key))

	var got models.RatingRecomputeRequest
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &got))
	assert.Equal(t, req, got)
}

func TestPublishRecompute_Error(t *testing.T) {
	writer := &fakeKafkaWriter{err: errors.New("broker unavailable")}
	facade := NewRatingRecomputeKafkaFacade(writer)

	err := facade.PublishRecompute(context.Background(), models.RatingRecomputeRequest{ProductID: uuid.New()})
	assert.EqualError(t, err, "broker unavailable")
}

func TestClose(t *testing.T) {
	writer := &fakeKafkaWriter{}
	facade := NewRatingRecomputeKafkaFacade(writer)

	assert.NoError(t, facade.Close())
	assert.True(t, writer.closed)
}
