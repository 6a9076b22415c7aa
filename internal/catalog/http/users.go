package http

import (
	"errors"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/catalog/service"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/catalogsdk"
	"github.com/prepdeck/prepdeck/pkg/httpx"
	"github.com/prepdeck/prepdeck/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account identified by phone number and email address
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.RegisterRequest	true	"phone, email, password, repassword"
//	@Success		200		{object}	catalogsdk.RegisterResponse	"user_id, phone, email"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(ctx, req.Phone, req.Email, req.Password, req.RePassword)
	if err != nil {
		var verr *service.ValidationError
		var derr *store.DuplicateError
		switch {
		case errors.As(err, &verr):
			httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeInvalidRequest,
				ErrorDescription: verr.Msg,
			})
		case errors.As(err, &derr):
			httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeDuplicateIdentity,
				ErrorDescription: derr.Field + " is already registered",
			})
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to register user",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.RegisterResponse{
		UserID: user.ID,
		Phone:  user.Phone,
		Email:  user.Email,
	})
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with a phone number or email address plus password and receive a session token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.LoginRequest		true	"identifier, password"
//	@Success		200		{object}	catalogsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	_, token, err := h.UserService.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown identifier and wrong password are indistinguishable
			httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeInvalidCredentials,
				ErrorDescription: "Invalid identifier or password",
			})
			return
		}
		log.Error("failed to log in user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to log in",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.UserService.Tokens.TTL().Seconds()),
	})
}
