package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Evowe/baseball-stats-api/internal/domain/account"
	"github.com/Evowe/baseball-stats-api/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type principalDTO struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type sessionDTO struct {
	Token string       `json:"token"`
	User  principalDTO `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req registerRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	user, err := h.accountService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "register failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, toUserDTO(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req loginRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.accountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		Token: session.Token,
		User: principalDTO{
			UserID:   session.Principal.UserID,
			Username: session.Principal.Username,
			IsAdmin:  session.Principal.IsAdmin,
		},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 {
		h.accountService.Logout(ctx, strings.TrimSpace(parts[1]))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"logged_out": true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, principalDTO{
		UserID:   principal.UserID,
		Username: principal.Username,
		IsAdmin:  principal.IsAdmin,
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	users, err := h.accountService.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]userDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toUserDTO(user))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleAdmin")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	userID, err := pathInt64(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	user, err := h.accountService.ToggleAdmin(ctx, principal, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "toggle admin failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toUserDTO(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	if h.accountService == nil {
		writeError(ctx, w, fmt.Errorf("%w: account service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, usecase.ErrUnauthorized)
		return
	}

	userID, err := pathInt64(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.accountService.DeleteUser(ctx, principal, userID); err != nil {
		h.logger.ErrorContext(ctx, "delete user failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func toUserDTO(user account.User) userDTO {
	return userDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
