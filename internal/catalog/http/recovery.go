package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/catalog/service"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/catalogsdk"
	"github.com/prepdeck/prepdeck/pkg/httpx"
	"github.com/prepdeck/prepdeck/pkg/slogx"
)

type RecoveryHandler struct {
	RecoveryService *service.RecoveryService
}

// HandleRequestOTP godoc
//
//	@Summary		Request Password Reset Code Endpoint
//	@Description	Issue a six-digit reset code for the account registered under the phone number
//	@Description	The code is delivered out-of-band and is never part of this response
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.RequestOTPRequest	true	"phone"
//	@Success		200		{object}	catalogsdk.MessageResponse		"message"
//	@Failure		400		{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/users/request-otp [post].
func (h *RecoveryHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.RequestOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.RecoveryService.RequestOTP(ctx, req.Phone); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeInvalidRequest,
				ErrorDescription: verr.Msg,
			})
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeNotFound,
				ErrorDescription: "No account for that phone number",
			})
		default:
			log.Error("failed to issue reset code", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
				Error:            catalogsdk.ErrorCodeServerError,
				ErrorDescription: "Failed to issue reset code",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Reset code sent",
	})
}

// HandleVerifyOTP godoc
//
//	@Summary		Verify Password Reset Code Endpoint
//	@Description	Check a reset code against the pending one for the phone number
//	@Description	Verification does not consume the code; it stays valid until reset-password uses it or it expires
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.VerifyOTPRequest	true	"phone, code"
//	@Success		200		{object}	catalogsdk.MessageResponse	"message"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/users/verify-otp [post].
func (h *RecoveryHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.VerifyOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.RecoveryService.VerifyOTP(ctx, req.Phone, req.Code); err != nil {
		h.writeOTPError(w, log, err, "Failed to verify reset code")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Reset code verified",
	})
}

// HandleResetPassword godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Set a new password using a previously issued reset code; the code is consumed on success
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.ResetPasswordRequest	true	"phone, code, new_password"
//	@Success		200		{object}	catalogsdk.MessageResponse		"message"
//	@Failure		400		{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/users/reset-password [post].
func (h *RecoveryHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.RecoveryService.ResetPassword(ctx, req.Phone, req.NewPassword, req.Code); err != nil {
		h.writeOTPError(w, log, err, "Failed to reset password")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Password updated",
	})
}

// writeOTPError maps reset flow failures to their distinct error codes so
// clients can tell "re-enter the code" from "request a new one".
func (h *RecoveryHandler) writeOTPError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeInvalidRequest,
			ErrorDescription: verr.Msg,
		})
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeNotFound,
			ErrorDescription: "No account for that phone number",
		})
	case errors.Is(err, service.ErrNoPendingOTP):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeNoPendingOTP,
			ErrorDescription: "No reset code has been requested",
		})
	case errors.Is(err, service.ErrOTPMismatch):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeOTPMismatch,
			ErrorDescription: "Reset code does not match",
		})
	case errors.Is(err, service.ErrOTPExpired):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeOTPExpired,
			ErrorDescription: "Reset code has expired, request a new one",
		})
	default:
		log.Error("reset flow failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeServerError,
			ErrorDescription: fallback,
		})
	}
}
