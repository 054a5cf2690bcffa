package services

import (
	"context"
	"errors"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/rating"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

// ratingRefreshTimeout bounds the recompute and hand-off that follow a review write.
const ratingRefreshTimeout = 10 * time.Second

var (
	// ErrInvalidRating is returned for scores outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrDuplicateReview is returned when a concurrent insert for the same (product, user) won.
	// Retrying the submission takes the update path.
	ErrDuplicateReview = errors.New("review already exists")
	// ErrProductNotFound is returned when the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*models.ReviewDB, error)
	GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewDB, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ReviewDB, error)
	ListRatingsByProduct(ctx context.Context, productID uuid.UUID) ([]int, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Create(ctx context.Context, productID, userID uuid.UUID, score int, comment *string) (*models.ReviewDB, error)
	Update(ctx context.Context, reviewID uuid.UUID, score int, comment *string) (*models.ReviewDB, error)
}

// ProductReader reads a single product.
type ProductReader interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
}

// ProductRatingWriter persists a product's rating aggregate.
type ProductRatingWriter interface {
	UpdateRating(ctx context.Context, productID uuid.UUID, agg rating.Aggregate) error
}

// ProductCacheInvalidator evicts cached product reads.
type ProductCacheInvalidator interface {
	Delete(ctx context.Context, productID uuid.UUID) error
}

// RecomputePublisher hands a stale aggregate over to the background worker.
type RecomputePublisher interface {
	PublishRecompute(ctx context.Context, req models.RatingRecomputeRequest) error
}

// ReviewService maintains reviews and the rating aggregate derived from them.
// The aggregate is recomputed from all current reviews after every write;
// no transaction spans the review write and the recompute.
type ReviewService struct {
	reader     ReviewReader
	writer     ReviewWriter
	products   ProductReader
	ratings    ProductRatingWriter
	cache      ProductCacheInvalidator
	publisher  RecomputePublisher
	activities ActivityRecorder
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reader ReviewReader,
	writer ReviewWriter,
	products ProductReader,
	ratings ProductRatingWriter,
	cache ProductCacheInvalidator,
	publisher RecomputePublisher,
	activities ActivityRecorder,
) *ReviewService {
	return &ReviewService{
		reader:     reader,
		writer:     writer,
		products:   products,
		ratings:    ratings,
		cache:      cache,
		publisher:  publisher,
		activities: activities,
	}
}

// SubmitReview creates the user's review of the product or overwrites the existing one,
// then refreshes the product aggregate. created reports which path was taken.
func (s *ReviewService) SubmitReview(
	ctx context.Context,
	productID, userID uuid.UUID,
	score int,
	comment *string,
) (review *models.ReviewDB, created bool, err error) {
	if err := rating.ValidateScore(score); err != nil {
		return nil, false, ErrInvalidRating
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	existing, err := s.reader.GetByProductAndUser(ctx, productID, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up review", "productID", productID, "userID", userID, "error", err)
		return nil, false, err
	}

	if existing != nil {
		review, err = s.writer.Update(ctx, existing.ReviewID, score, comment)
		if err != nil {
			logger.Log.Errorw("failed to update review", "reviewID", existing.ReviewID, "error", err)
			return nil, false, err
		}
	} else {
		review, err = s.writer.Create(ctx, productID, userID, score, comment)
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("concurrent review insert lost", "productID", productID, "userID", userID)
			return nil, false, ErrDuplicateReview
		}
		if err != nil {
			logger.Log.Errorw("failed to create review", "productID", productID, "userID", userID, "error", err)
			return nil, false, err
		}
		created = true
	}

	s.refreshRating(ctx, productID)

	s.activities.Record(ctx, models.Activity{
		UserID:      userID,
		Type:        models.ActivityReview,
		Description: "Reviewed a product",
		Metadata:    map[string]any{"productId": productID.String(), "rating": score},
	})

	withUser, err := s.reader.GetByID(ctx, review.ReviewID)
	if err != nil || withUser == nil {
		logger.Log.Warnw("failed to load review author, returning bare review", "reviewID", review.ReviewID, "error", err)
		return review, created, nil
	}

	return withUser, created, nil
}

// refreshRating recomputes the aggregate. Failure leaves the review in place;
// it is logged and handed to the background worker.
// The review is already stored, so the refresh outlives a disconnected caller.
func (s *ReviewService) refreshRating(ctx context.Context, productID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ratingRefreshTimeout)
	defer cancel()

	err := s.RecomputeProductRating(ctx, productID)
	if err == nil {
		return
	}

	logger.Log.Errorw("rating recompute failed, aggregate is stale", "productID", productID, "error", err)

	if s.publisher == nil {
		return
	}
	req := models.RatingRecomputeRequest{
		ProductID:   productID,
		Reason:      err.Error(),
		RequestedAt: time.Now().Unix(),
	}
	if err := s.publisher.PublishRecompute(ctx, req); err != nil {
		logger.Log.Errorw("failed to schedule rating recompute", "productID", productID, "error", err)
	}
}

// RecomputeProductRating derives rating and reviewsCount from every current review of the product.
func (s *ReviewService) RecomputeProductRating(ctx context.Context, productID uuid.UUID) error {
	scores, err := s.reader.ListRatingsByProduct(ctx, productID)
	if err != nil {
		return err
	}

	agg := rating.Compute(scores)
	if err := s.ratings.UpdateRating(ctx, productID, agg); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, productID); err != nil {
			logger.Log.Warnw("failed to evict product from cache", "productID", productID, "error", err)
		}
	}

	logger.Log.Infow("product rating recomputed", "productID", productID, "rating", agg.Rating, "reviewsCount", agg.ReviewsCount)
	return nil
}

// ListReviews returns the product's reviews, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]models.ReviewDB, error) {
	reviews, err := s.reader.ListByProduct(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "productID", productID, "error", err)
		return nil, err
	}
	return reviews, nil
}
