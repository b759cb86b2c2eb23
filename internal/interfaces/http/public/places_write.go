package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	catalogapp "github.com/aliraza-dev/foodatlas-services/api/internal/catalog/application"
	"github.com/aliraza-dev/foodatlas-services/api/internal/interfaces/http/common"
)

func (h *Handler) placeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		cmd, err := buildPlaceCommand(req, h.policy)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		place, err := h.placeCommands.Create(ctx, cmd)
		if err != nil {
			if errors.Is(err, catalogapp.ErrDuplicateName) {
				common.WriteError(h.logger, w, http.StatusConflict, "a food place with this name already exists")
				return
			}
			h.logger.Printf("place create failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to create food place")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildPlaceResponse(*place))
	}
}

func (h *Handler) placeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid food place id")
			return
		}

		var req placeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		cmd, err := buildPlaceCommand(req, h.policy)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		place, err := h.placeCommands.Update(ctx, idParam, cmd)
		if err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				common.WriteError(h.logger, w, http.StatusNotFound, "Food place not found")
			case errors.Is(err, catalogapp.ErrDuplicateName):
				common.WriteError(h.logger, w, http.StatusConflict, "a food place with this name already exists")
			default:
				h.logger.Printf("place update failed id=%q err=%v", idParam, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to update food place")
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildPlaceResponse(*place))
	}
}

func (h *Handler) placeDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid food place id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		if err := h.placeCommands.Delete(ctx, idParam); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Food place not found")
				return
			}
			h.logger.Printf("place delete failed id=%q err=%v", idParam, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to delete food place")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
