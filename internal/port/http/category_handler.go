package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Glassyflute/adboard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     *usecase.CategoryUsecase
	logger *zap.Logger
}

func NewCategoryHandler(uc *usecase.CategoryUsecase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

// pathID reads the {id} route parameter. Non-integer ids fall through to
// 404, matching the integer-keyed URL space.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.uc.ListCategories(r.Context(), parsePage(r.URL.Query()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	category, err := h.uc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

type categoryCreateRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	category, err := h.uc.CreateCategory(r.Context(), usecase.CreateCategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

type categoryUpdateRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var req categoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	category, err := h.uc.UpdateCategory(r.Context(), id, usecase.UpdateCategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err := h.uc.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w, id)
}
