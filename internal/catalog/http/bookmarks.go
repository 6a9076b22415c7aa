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

type BookmarksHandler struct {
	BookmarkService *service.BookmarkService
}

// HandleAdd godoc
//
//	@Summary		Add Bookmark Endpoint
//	@Description	Bookmark a course for the signed-in user; adding an existing bookmark is a no-op
//	@Tags			Bookmarks
//	@Produce		json
//	@Param			courseId	path		string						true	"Course ID"
//	@Success		200			{object}	catalogsdk.MessageResponse	"message"
//	@Failure		401			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/users/bookmarks/{courseId} [post].
func (h *BookmarksHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	courseID := r.PathValue("courseId")

	if err := h.BookmarkService.Add(ctx, userID, courseID); err != nil {
		h.writeBookmarkError(w, log, err, "Failed to add bookmark")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Bookmark added",
	})
}

// HandleRemove godoc
//
//	@Summary		Remove Bookmark Endpoint
//	@Description	Remove a course bookmark for the signed-in user; removing an absent bookmark is a no-op
//	@Tags			Bookmarks
//	@Produce		json
//	@Param			courseId	path		string						true	"Course ID"
//	@Success		200			{object}	catalogsdk.MessageResponse	"message"
//	@Failure		401			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/users/bookmarks/{courseId} [delete].
func (h *BookmarksHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	courseID := r.PathValue("courseId")

	if err := h.BookmarkService.Remove(ctx, userID, courseID); err != nil {
		h.writeBookmarkError(w, log, err, "Failed to remove bookmark")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Bookmark removed",
	})
}

// HandleList godoc
//
//	@Summary		List Bookmarks Endpoint
//	@Description	List the signed-in user's bookmarked courses; bookmarks pointing at deleted courses are omitted
//	@Tags			Bookmarks
//	@Produce		json
//	@Success		200	{object}	catalogsdk.CourseListResponse	"courses"
//	@Failure		401	{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/users/bookmarks [get].
func (h *BookmarksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)

	courses, err := h.BookmarkService.List(ctx, userID)
	if err != nil {
		h.writeBookmarkError(w, log, err, "Failed to list bookmarks")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseListResponse(courses))
}

// writeBookmarkError translates bookmark failures. A token whose user no
// longer exists is an authentication failure, not a server error.
func (h *BookmarksHandler) writeBookmarkError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusUnauthorized, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeInvalidToken,
			ErrorDescription: "Unknown user",
		})
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeInvalidRequest,
			ErrorDescription: verr.Msg,
		})
	default:
		log.Error("bookmark operation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeServerError,
			ErrorDescription: fallback,
		})
	}
}
