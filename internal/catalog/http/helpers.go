package http

import (
	"encoding/json"
	"net/http"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/pkg/catalogsdk"
	"github.com/prepdeck/prepdeck/pkg/httpx"
)

// decodeBody parses a JSON request body into dst. On failure it writes the
// standard invalid_request response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{
			Error:            catalogsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return false
	}
	return true
}

func courseResponse(c domain.Course) catalogsdk.CourseResponse {
	return catalogsdk.CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Branch:      string(c.Branch),
		Description: c.Description,
		Topics:      c.Topics,
		HasSyllabus: c.SyllabusKey != "",
		PriceCents:  c.PriceCents,
	}
}

func courseListResponse(courses []domain.Course) catalogsdk.CourseListResponse {
	out := catalogsdk.CourseListResponse{
		Courses: make([]catalogsdk.CourseResponse, 0, len(courses)),
	}
	for _, c := range courses {
		out.Courses = append(out.Courses, courseResponse(c))
	}
	return out
}
