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

type CoursesHandler struct {
	CourseService   *service.CourseService
	SyllabusService *service.SyllabusService
}

func courseParams(req catalogsdk.CourseRequest) service.CourseParams {
	return service.CourseParams{
		Title:       req.Title,
		Branch:      req.Branch,
		Description: req.Description,
		Topics:      req.Topics,
		PriceCents:  req.PriceCents,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Course Endpoint
//	@Description	Add a course to the catalog
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.CourseRequest	true	"title, branch, description, topics, price_cents"
//	@Success		200		{object}	catalogsdk.CourseResponse	"course"
//	@Failure		400		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/courses [post].
func (h *CoursesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.CourseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	course, err := h.CourseService.Create(ctx, courseParams(req))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to create course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseResponse(course))
}

// HandleGet godoc
//
//	@Summary		Get Course Endpoint
//	@Description	Fetch a single course by ID
//	@Tags			Courses
//	@Produce		json
//	@Param			courseId	path		string						true	"Course ID"
//	@Success		200			{object}	catalogsdk.CourseResponse	"course"
//	@Failure		404			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/courses/{courseId} [get].
func (h *CoursesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	course, err := h.CourseService.Get(ctx, r.PathValue("courseId"))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to fetch course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseResponse(course))
}

// HandleUpdate godoc
//
//	@Summary		Update Course Endpoint
//	@Description	Replace a course's fields
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			courseId	path		string						true	"Course ID"
//	@Param			body		body		catalogsdk.CourseRequest	true	"title, branch, description, topics, price_cents"
//	@Success		200			{object}	catalogsdk.CourseResponse	"course"
//	@Failure		400			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/courses/{courseId} [put].
func (h *CoursesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req catalogsdk.CourseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	course, err := h.CourseService.Update(ctx, r.PathValue("courseId"), courseParams(req))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to update course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseResponse(course))
}

// HandleDelete godoc
//
//	@Summary		Delete Course Endpoint
//	@Description	Remove a course from the catalog; existing bookmarks keep their reference and are omitted from listings
//	@Tags			Courses
//	@Produce		json
//	@Param			courseId	path		string						true	"Course ID"
//	@Success		200			{object}	catalogsdk.MessageResponse	"message"
//	@Failure		404			{object}	catalogsdk.ErrorResponse	"error, error_description"
//	@Router			/courses/{courseId} [delete].
func (h *CoursesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CourseService.Delete(ctx, r.PathValue("courseId")); err != nil {
		h.writeCourseError(w, log, err, "Failed to delete course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.MessageResponse{
		Message: "Course deleted",
	})
}

// HandleList godoc
//
//	@Summary		List Courses Endpoint
//	@Description	List catalog courses, optionally filtered by branch
//	@Tags			Courses
//	@Produce		json
//	@Param			branch	query		string							false	"Branch filter (cse, ece, eee, mech, civil)"
//	@Success		200		{object}	catalogsdk.CourseListResponse	"courses"
//	@Failure		400		{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/courses [get].
func (h *CoursesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	courses, err := h.CourseService.List(ctx, r.URL.Query().Get("branch"))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to list courses")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseListResponse(courses))
}

// HandleSearch godoc
//
//	@Summary		Search Courses Endpoint
//	@Description	Case-insensitive substring search over course titles and descriptions
//	@Tags			Courses
//	@Produce		json
//	@Param			q	query		string							true	"Search query"
//	@Success		200	{object}	catalogsdk.CourseListResponse	"courses"
//	@Failure		400	{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/courses/search [get].
func (h *CoursesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	courses, err := h.CourseService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to search courses")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, courseListResponse(courses))
}

// HandleSyllabusUpload godoc
//
//	@Summary		Syllabus Upload Endpoint
//	@Description	Issue a presigned PUT URL for uploading the course syllabus document to object storage
//	@Tags			Courses
//	@Produce		json
//	@Param			courseId	path		string							true	"Course ID"
//	@Success		200			{object}	catalogsdk.SyllabusURLResponse	"url"
//	@Failure		404			{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/courses/{courseId}/syllabus [post].
func (h *CoursesHandler) HandleSyllabusUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	uploadURL, err := h.SyllabusService.PresignUpload(ctx, r.PathValue("courseId"))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to presign syllabus upload")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.SyllabusURLResponse{URL: uploadURL})
}

// HandleSyllabusDownload godoc
//
//	@Summary		Syllabus Download Endpoint
//	@Description	Issue a presigned GET URL for downloading the course syllabus document
//	@Tags			Courses
//	@Produce		json
//	@Param			courseId	path		string							true	"Course ID"
//	@Success		200			{object}	catalogsdk.SyllabusURLResponse	"url"
//	@Failure		404			{object}	catalogsdk.ErrorResponse		"error, error_description"
//	@Router			/courses/{courseId}/syllabus [get].
func (h *CoursesHandler) HandleSyllabusDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	downloadURL, err := h.SyllabusService.PresignDownload(ctx, r.PathValue("courseId"))
	if err != nil {
		h.writeCourseError(w, log, err, "Failed to presign syllabus download")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.SyllabusURLResponse{URL: downloadURL})
}

func (h *CoursesHandler) writeCourseError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeInvalidRequest,
			ErrorDescription: verr.Msg,
		})
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeNotFound,
			ErrorDescription: "Course not found",
		})
	case errors.Is(err, service.ErrNoSyllabus):
		httpx.WriteJSON(w, http.StatusNotFound, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeNotFound,
			ErrorDescription: "Course has no syllabus document",
		})
	default:
		log.Error("course operation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeServerError,
			ErrorDescription: fallback,
		})
	}
}
