package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/google/uuid"
)

//go:generate mockgen -source=review.go -destination=review_mock.go -package=handlers

// ReviewSubmitter defines the interface for creating or updating a review.
type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, productID, userID uuid.UUID, score int, comment *string) (*models.ReviewDB, bool, error)
}

// ReviewLister defines the interface for listing a product's reviews.
type ReviewLister interface {
	ListReviews(ctx context.Context, productID uuid.UUID) ([]models.ReviewDB, error)
}

// SubmitReviewRequest represents the JSON body of a review submission
// swagger:model SubmitReviewRequest
type SubmitReviewRequest struct {
	// Reviewed product
	// required: true
	ProductID string `json:"productId"`

	// Optional, must equal the authenticated user when set
	UserID string `json:"userId,omitempty"`

	// Integer score from 1 to 5
	// required: true
	// default: 4
	Rating json.Number `json:"rating" swaggertype:"integer"`

	// default: Sturdy and clean
	Comment *string `json:"comment,omitempty"`
}

// NewSubmitReviewHandler returns an HTTP handler for submitting a review.
// A user has at most one review per product; resubmitting overwrites it.
// @Summary Submit review
// @Description Creates the caller's review of a product, or updates it if one exists, and refreshes the product rating
// @Tags reviews
// @Accept json
// @Produce json
// @Param submitReviewRequest body handlers.SubmitReviewRequest true "Review"
// @Success 200 {object} models.ReviewDB "Existing review updated"
// @Success 201 {object} models.ReviewDB "Review created"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or rating outside 1..5"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "userId does not match the token"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 409 {object} handlers.ErrorResponse "Concurrent submission, retry"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews [post]
// @Security BearerAuth
func NewSubmitReviewHandler(svc ReviewSubmitter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		var req SubmitReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if req.ProductID == "" || req.Rating == "" {
			writeError(w, r, http.StatusBadRequest, "productId and rating are required", nil)
			return
		}

		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid productId", err)
			return
		}

		if req.UserID != "" {
			claimed, err := uuid.Parse(req.UserID)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "Invalid userId", err)
				return
			}
			if claimed != userID {
				writeError(w, r, http.StatusForbidden, "Cannot submit a review for another user", nil)
				return
			}
		}

		score, ok := integerRating(req.Rating)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "Rating must be an integer between 1 and 5", nil)
			return
		}

		review, created, err := svc.SubmitReview(r.Context(), productID, userID, score, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, r, http.StatusBadRequest, "Rating must be an integer between 1 and 5", nil)
			case errors.Is(err, services.ErrProductNotFound):
				writeError(w, r, http.StatusNotFound, "Product not found", nil)
			case errors.Is(err, services.ErrDuplicateReview):
				writeError(w, r, http.StatusConflict, "Review was submitted concurrently, please retry", err)
			default:
				internalError(w, r, err)
			}
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, review)
	}
}

// integerRating accepts whole numbers only (4 and 4.0, not 4.5).
// Range checking is left to the service.
func integerRating(n json.Number) (int, bool) {
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// NewListReviewsHandler returns an HTTP handler listing a product's reviews.
// @Summary List reviews
// @Description Returns the reviews of a product, newest first
// @Tags reviews
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {array} models.ReviewDB "Reviews"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid productId"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reviews [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("productId")
		if raw == "" {
			writeError(w, r, http.StatusBadRequest, "productId is required", nil)
			return
		}

		productID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid productId", err)
			return
		}

		reviews, err := svc.ListReviews(r.Context(), productID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if reviews == nil {
			reviews = []models.ReviewDB{}
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}
