package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	identityapp "github.com/aliraza-dev/foodatlas-services/api/internal/identity/application"
	identitydomain "github.com/aliraza-dev/foodatlas-services/api/internal/identity/domain"
	"github.com/aliraza-dev/foodatlas-services/api/internal/interfaces/http/common"
)

func (h *Handler) signupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		cmd, err := buildSignupCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		result, err := h.auth.Signup(ctx, cmd)
		if err != nil {
			if errors.Is(err, identityapp.ErrEmailTaken) {
				common.WriteError(h.logger, w, http.StatusConflict, "Email already in use.")
				return
			}
			h.logger.Printf("signup failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "user registration failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, authResponse{
			Message: "User registered successfully.",
			Token:   result.Token,
			User:    buildUserResponse(result.User),
		})
	}
}

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		email, err := identitydomain.NewEmail(req.Email)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		password := strings.TrimSpace(req.Password)
		if password == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "password is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		result, err := h.auth.Login(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, identityapp.ErrUnknownEmail):
				common.WriteError(h.logger, w, http.StatusNotFound, "User not found.")
			case errors.Is(err, identityapp.ErrInvalidCredentials):
				common.WriteError(h.logger, w, http.StatusUnauthorized, "Invalid credentials.")
			default:
				h.logger.Printf("login failed: %v", err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "login failed")
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, authResponse{
			Message: "Login successful.",
			Token:   result.Token,
			User:    buildUserResponse(result.User),
		})
	}
}

func buildSignupCommand(req signupRequest) (identityapp.SignupCommand, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return identityapp.SignupCommand{}, errors.New("first name is required")
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return identityapp.SignupCommand{}, errors.New("last name is required")
	}

	email, err := identitydomain.NewEmail(req.Email)
	if err != nil {
		return identityapp.SignupCommand{}, err
	}

	password := strings.TrimSpace(req.Password)
	if len(password) < common.MinPasswordLength {
		return identityapp.SignupCommand{}, fmt.Errorf("password must be at least %d characters", common.MinPasswordLength)
	}

	role, err := identitydomain.NewRole(req.Role)
	if err != nil {
		return identityapp.SignupCommand{}, err
	}

	return identityapp.SignupCommand{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      role,
	}, nil
}

func buildUserResponse(user identitydomain.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role.String(),
	}
}
