package parks

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/park-finder/api/internal/interfaces/http/common"
	"github.com/sngm3741/park-finder/api/internal/parks/application"
)

func (h *Handler) parkListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		filter := application.ParkFilter{City: strings.TrimSpace(r.URL.Query().Get("city"))}
		parks, err := h.parkQueries.List(ctx, filter)
		if err != nil {
			h.writeError(w, r, "list parks", err)
			return
		}

		items := make([]parkResponse, 0, len(parks))
		for _, park := range parks {
			items = append(items, buildParkResponse(park))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) parkDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		park, err := h.parkQueries.Detail(ctx, chi.URLParam(r, "park_id"))
		if err != nil {
			h.writeError(w, r, "get park", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildParkResponse(*park))
	}
}

func (h *Handler) parkCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createParkRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			h.writeBadRequest(w, msgInvalidPark, err)
			return
		}
		req.normalize()
		if err := h.validate.Struct(req); err != nil {
			h.writeBadRequest(w, msgInvalidPark, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		park, err := h.parkCommands.Create(ctx, req.toCommand())
		if err != nil {
			h.writeError(w, r, "create park", err)
			return
		}
		h.logger.Info().Str("park_id", park.ID).Msg("park created")
		common.WriteJSON(h.logger, w, http.StatusCreated, buildParkResponse(*park))
	}
}

func (h *Handler) parkUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateParkRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			h.writeBadRequest(w, msgInvalidPark, err)
			return
		}
		if err := req.normalize(); err != nil {
			h.writeBadRequest(w, msgInvalidPark, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.writeBadRequest(w, msgInvalidPark, err)
			return
		}
		update := req.toUpdate()
		if update.IsEmpty() {
			h.writeBadRequest(w, msgInvalidPark, nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		park, err := h.parkCommands.Update(ctx, chi.URLParam(r, "park_id"), update)
		if err != nil {
			h.writeError(w, r, "update park", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, buildParkResponse(*park))
	}
}

func (h *Handler) parkDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		id := chi.URLParam(r, "park_id")
		if err := h.parkCommands.Delete(ctx, id); err != nil {
			h.writeError(w, r, "delete park", err)
			return
		}
		h.logger.Info().Str("park_id", id).Msg("park deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}
