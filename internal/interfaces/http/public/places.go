package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aliraza-dev/foodatlas-services/api/internal/interfaces/http/common"
)

// requestTimeout bounds every store round-trip so a slow query fails instead
// of hanging the request.
const requestTimeout = 5 * time.Second

func (h *Handler) placeSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		params, err := parseSearchParams(r.URL.Query(), h.policy)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.placeQueries.Search(ctx, params.Filter, params.Paging)
		if err != nil {
			h.logger.Printf("place search failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to search food places")
			return
		}

		data := make([]placeResponse, 0, len(result.Data))
		for _, place := range result.Data {
			data = append(data, buildPlaceResponse(place))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, searchResponse{
			Data:        data,
			CurrentPage: result.CurrentPage,
			TotalPages:  result.TotalPages,
			TotalItems:  result.TotalItems,
		})
	}
}

func (h *Handler) placeSuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		query, err := parseSuggestQuery(r.URL.Query(), h.policy)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		suggestions, err := h.placeQueries.Suggest(ctx, query)
		if err != nil {
			h.logger.Printf("place suggestions failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch suggestions")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, suggestions)
	}
}

func (h *Handler) placeListAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		places, err := h.placeQueries.ListAll(ctx)
		if err != nil {
			h.logger.Printf("place list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list food places")
			return
		}

		items := make([]placeResponse, 0, len(places))
		for _, place := range places {
			items = append(items, buildPlaceResponse(place))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) placeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid food place id")
			return
		}

		place, err := h.placeQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Food place not found")
				return
			}
			h.logger.Printf("place detail fetch failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch food place")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildPlaceResponse(*place))
	}
}
