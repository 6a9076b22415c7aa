package catalogsdk

// ============================================================================
// Error Responses
// ============================================================================

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// User & Session Types
// ============================================================================

// RegisterRequest is the body for POST /users/register.
type RegisterRequest struct {
	// Phone is the user's 10-digit phone number (primary identity)
	Phone string `json:"phone"`

	// Email is the user's email address (secondary identity)
	Email string `json:"email"`

	// Password is the plaintext password; it is hashed server-side
	Password string `json:"password"`

	// RePassword must match Password
	RePassword string `json:"repassword"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// LoginRequest is the body for POST /users/login. Identifier accepts either
// the registered phone number or email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// TokenResponse is returned by POST /users/login.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate bookmark requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Password Reset Types
// ============================================================================

// RequestOTPRequest is the body for POST /users/request-otp.
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest is the body for POST /users/verify-otp.
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// ResetPasswordRequest is the body for POST /users/reset-password.
type ResetPasswordRequest struct {
	Phone       string `json:"phone"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// MessageResponse acknowledges operations with no payload of their own.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Catalog Types
// ============================================================================

// CourseRequest is the body for course create and update.
type CourseRequest struct {
	Title       string   `json:"title"`
	Branch      string   `json:"branch"`
	Description string   `json:"description,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	PriceCents  *int64   `json:"price_cents,omitempty"`
}

// CourseResponse is a course as returned by the catalog endpoints.
type CourseResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Branch      string   `json:"branch"`
	Description string   `json:"description,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	HasSyllabus bool     `json:"has_syllabus"`
	PriceCents  *int64   `json:"price_cents,omitempty"`
}

// CourseListResponse wraps a list of courses.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// SyllabusURLResponse carries a presigned URL for syllabus upload or download.
type SyllabusURLResponse struct {
	URL string `json:"url"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
