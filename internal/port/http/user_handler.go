package http

import (
	"encoding/json"
	"net/http"

	"github.com/Glassyflute/adboard/internal/usecase"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     *usecase.UserUsecase
	logger *zap.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.uc.ListUsers(r.Context(), parsePage(r.URL.Query()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	user, err := h.uc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type userCreateRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Username      string   `json:"username"`
	Password      string   `json:"password"`
	Role          *string  `json:"role"`
	Age           uint16   `json:"age"`
	LocationNames []string `json:"location_names"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.uc.CreateUser(r.Context(), usecase.CreateUserInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.Username,
		Password:      req.Password,
		Role:          req.Role,
		Age:           req.Age,
		LocationNames: req.LocationNames,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type userUpdateRequest struct {
	FirstName     *string  `json:"first_name"`
	LastName      *string  `json:"last_name"`
	Username      *string  `json:"username"`
	Password      *string  `json:"password"`
	Role          *string  `json:"role"`
	Age           *uint16  `json:"age"`
	LocationNames []string `json:"location_names"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.uc.UpdateUser(r.Context(), id, usecase.UpdateUserInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.Username,
		Password:      req.Password,
		Role:          req.Role,
		Age:           req.Age,
		LocationNames: req.LocationNames,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err := h.uc.DeleteUser(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondDeleted(w, id)
}
