package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/model"
)

// UserService defines business operations for user accounts.
type UserService interface {
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Update(ctx context.Context, id int64, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

// User handles HTTP endpoints for user accounts.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{
		service: service,
		logger:  logger,
	}
}

type createUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

type updateUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

// userResponse is the wire shape of a user. The password hash never appears.
type userResponse struct {
	UserID      int64     `json:"user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		UserID:      user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		writeError(w, http.StatusBadRequest, kindMalformed, "email, password, first_name and last_name are required")
		return
	}

	user, err := h.service.Create(r.Context(), model.CreateUserParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid user id")
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *User) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 0)

	users, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid request body")
		return
	}

	user, err := h.service.Update(r.Context(), id, model.UpdateUserParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, kindMalformed, "invalid user id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ackResponse{Message: "User deleted successfully"})
}
