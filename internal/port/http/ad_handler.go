package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Glassyflute/adboard/internal/usecase"
	"go.uber.org/zap"
)

// maxImageSize bounds the multipart form held in memory on image upload.
const maxImageSize = 10 << 20

type AdHandler struct {
	uc     *usecase.AdUsecase
	logger *zap.Logger
}

func NewAdHandler(uc *usecase.AdUsecase, logger *zap.Logger) *AdHandler {
	return &AdHandler{uc: uc, logger: logger}
}

func (h *AdHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseAdFilter(query)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	page, err := h.uc.ListAds(r.Context(), filter, parsePage(query))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *AdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	ad, err := h.uc.GetAd(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

type adCreateRequest struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"is_published"`
	Author      string  `json:"author"`
	Category    int64   `json:"category"`
}

func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req adCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ad, err := h.uc.CreateAd(r.Context(), usecase.CreateAdInput{
		Name:           req.Name,
		Price:          req.Price,
		Description:    req.Description,
		IsPublished:    req.IsPublished,
		AuthorUsername: req.Author,
		CategoryID:     req.Category,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

type adUpdateRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	IsPublished *bool   `json:"is_published"`
	Author      *int64  `json:"author"`
	Category    *int64  `json:"category"`
}

func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var req adUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ad, err := h.uc.UpdateAd(r.Context(), id, usecase.UpdateAdInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		IsPublished: req.IsPublished,
		AuthorID:    req.Author,
		CategoryID:  req.Category,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

// UploadImage reads the multipart "image" field and replaces the ad's image.
func (h *AdHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "failed to get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	view, err := h.uc.UploadAdImage(r.Context(), id, header.Filename, data)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err := h.uc.DeleteAd(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w, id)
}
