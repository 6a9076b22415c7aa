package catalogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the PrepDeck catalog service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new catalog service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes the
// response into target. Non-200 responses are returned as *APIError.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	reqBody, target any,
	bearer string,
) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, respBody)
	}

	if target != nil {
		if err := json.Unmarshal(respBody, target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Register creates a new user account.
func (c *SDKClient) Register(ctx context.Context, phone, email, password string) (*RegisterResponse, error) {
	var out RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/register", RegisterRequest{
		Phone:      phone,
		Email:      email,
		Password:   password,
		RePassword: password,
	}, &out, "")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with a phone number or email address and returns an
// authenticated Session.
func (c *SDKClient) Login(ctx context.Context, identifier, password string) (*Session, error) {
	var out TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/login", LoginRequest{
		Identifier: identifier,
		Password:   password,
	}, &out, "")
	if err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// RequestOTP asks the service to issue a password reset code to the phone
// number. The code itself is never returned over the API.
func (c *SDKClient) RequestOTP(ctx context.Context, phone string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/request-otp", RequestOTPRequest{
		Phone: phone,
	}, nil, "")
}

// VerifyOTP checks a reset code without consuming it.
func (c *SDKClient) VerifyOTP(ctx context.Context, phone, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/verify-otp", VerifyOTPRequest{
		Phone: phone,
		Code:  code,
	}, nil, "")
}

// ResetPassword sets a new password using a previously issued reset code.
// The code is consumed on success.
func (c *SDKClient) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/reset-password", ResetPasswordRequest{
		Phone:       phone,
		Code:        code,
		NewPassword: newPassword,
	}, nil, "")
}

// ListCourses returns courses, optionally filtered by branch.
func (c *SDKClient) ListCourses(ctx context.Context, branch string) ([]CourseResponse, error) {
	path := "/courses"
	if branch != "" {
		path += "?branch=" + url.QueryEscape(branch)
	}

	var out CourseListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, ""); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// SearchCourses returns courses whose title or description contains the query,
// case-insensitively.
func (c *SDKClient) SearchCourses(ctx context.Context, query string) ([]CourseResponse, error) {
	var out CourseListResponse
	path := "/courses/search?q=" + url.QueryEscape(query)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, ""); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

// CreateCourse adds a course to the catalog.
func (c *SDKClient) CreateCourse(ctx context.Context, req CourseRequest) (*CourseResponse, error) {
	var out CourseResponse
	if err := c.doJSON(ctx, http.MethodPost, "/courses", req, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse replaces a course's fields.
func (c *SDKClient) UpdateCourse(ctx context.Context, courseID string, req CourseRequest) (*CourseResponse, error) {
	var out CourseResponse
	path := "/courses/" + url.PathEscape(courseID)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse removes a course from the catalog.
func (c *SDKClient) DeleteCourse(ctx context.Context, courseID string) error {
	path := "/courses/" + url.PathEscape(courseID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, "")
}

// GetCourse returns a single course by ID.
func (c *SDKClient) GetCourse(ctx context.Context, courseID string) (*CourseResponse, error) {
	var out CourseResponse
	path := "/courses/" + url.PathEscape(courseID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, ""); err != nil {
		return nil, err
	}
	return &out, nil
}
