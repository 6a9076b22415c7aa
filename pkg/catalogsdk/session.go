package catalogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated client created by SDKClient.Login. It carries
// the bearer token for the bookmark endpoints. Tokens are long-lived and
// stateless; there is no refresh flow, re-login when the token expires.
type Session struct {
	client      *SDKClient
	accessToken string
}

func newSession(c *SDKClient, tok TokenResponse) *Session {
	return &Session{
		client:      c,
		accessToken: tok.AccessToken,
	}
}

// AccessToken returns the raw bearer token, e.g. for persisting across runs.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// NewSessionFromToken rebuilds a Session from a previously stored token.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// AddBookmark bookmarks a course for the signed-in user. Adding an existing
// bookmark is a no-op.
func (s *Session) AddBookmark(ctx context.Context, courseID string) error {
	path := "/users/bookmarks/" + url.PathEscape(courseID)
	return s.client.doJSON(ctx, http.MethodPost, path, nil, nil, s.accessToken)
}

// RemoveBookmark removes a course bookmark. Removing an absent bookmark is a
// no-op.
func (s *Session) RemoveBookmark(ctx context.Context, courseID string) error {
	path := "/users/bookmarks/" + url.PathEscape(courseID)
	return s.client.doJSON(ctx, http.MethodDelete, path, nil, nil, s.accessToken)
}

// ListBookmarks returns the signed-in user's bookmarked courses. Bookmarks
// pointing at deleted courses are omitted.
func (s *Session) ListBookmarks(ctx context.Context) ([]CourseResponse, error) {
	var out CourseListResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/users/bookmarks", nil, &out, s.accessToken)
	if err != nil {
		return nil, err
	}
	return out.Courses, nil
}
