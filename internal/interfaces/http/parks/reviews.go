package parks

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/park-finder/api/internal/interfaces/http/common"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

func (h *Handler) reviewListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		reviews, err := h.reviewQueries.List(ctx)
		if err != nil {
			h.writeError(w, r, "list reviews", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewList(reviews))
	}
}

func (h *Handler) reviewsByParkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		reviews, err := h.reviewQueries.ListByPark(ctx, chi.URLParam(r, "park_id"))
		if err != nil {
			h.writeError(w, r, "list park reviews", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewList(reviews))
	}
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReviewRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			h.writeBadRequest(w, msgInvalidReview, err)
			return
		}
		req.normalize()
		if err := h.validate.Struct(req); err != nil {
			h.writeBadRequest(w, msgInvalidReview, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		review, err := h.reviewCommands.Submit(ctx, req.toCommand())
		if err != nil {
			h.writeError(w, r, "submit review", err)
			return
		}
		h.logger.Info().
			Str("review_id", review.ID).
			Str("park_id", review.ParkID).
			Msg("review submitted")
		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review))
	}
}

func buildReviewList(reviews []domain.Review) []reviewResponse {
	items := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, buildReviewResponse(review))
	}
	return items
}
