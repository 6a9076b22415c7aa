package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
)

var ErrNotFound = errors.New("store: not found")

// DuplicateError reports a uniqueness violation on user creation, naming the
// identity field that conflicted ("phone" or "email").
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("store: duplicate %s", e.Field)
}

// IsDuplicate returns the conflicting field name if err is a DuplicateError.
func IsDuplicate(err error) (string, bool) {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Field, true
	}
	return "", false
}

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Courses() Courses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing if fn returns nil
	// and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos, plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByPhone returns a user by phone number.
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)

	// GetUserByIdentifier resolves a login identifier that may be either a
	// phone number or an email address.
	GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns a DuplicateError naming the field when phone or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetOTP stores a pending recovery code with its expiry, overwriting any
	// prior pending code.
	SetOTP(ctx context.Context, userID string, code string, expiresAt time.Time) error

	// ConsumeOTP clears the pending recovery code and its expiry together,
	// but only while the stored code still equals code. It reports whether
	// a code was consumed, so a caller that validated the code earlier can
	// detect that a concurrent consumer beat it to the clear.
	ConsumeOTP(ctx context.Context, userID string, code string) (bool, error)

	// AddBookmark records a course reference for the user. Atomic and
	// idempotent: adding an already-present reference is a no-op.
	AddBookmark(ctx context.Context, userID, courseID string) error

	// RemoveBookmark drops a course reference. Idempotent.
	RemoveBookmark(ctx context.Context, userID, courseID string) error

	// ListBookmarks returns the user's bookmarked course IDs in insertion
	// order.
	ListBookmarks(ctx context.Context, userID string) ([]string, error)

	// ClearExpiredOTPs removes every pending code whose expiry has passed.
	// Housekeeping; the verify path enforces expiry on its own.
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

type Courses interface {
	// GetCourseByID returns a course by id.
	GetCourseByID(ctx context.Context, id string) (domain.Course, error)

	// GetCoursesByIDs resolves a set of course IDs. Unknown IDs are simply
	// absent from the result, preserving the order of ids.
	GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error)

	// CreateCourse inserts a new course (id is ULID).
	CreateCourse(ctx context.Context, c domain.Course) error

	// UpdateCourse replaces the mutable fields of a course.
	UpdateCourse(ctx context.Context, c domain.Course) error

	// DeleteCourse removes a course. Bookmark references to it become
	// unresolvable, which readers treat as omission.
	DeleteCourse(ctx context.Context, id string) error

	// ListCourses returns all courses, optionally filtered by branch
	// (empty branch means no filter), newest first.
	ListCourses(ctx context.Context, branch domain.Branch) ([]domain.Course, error)

	// SearchCourses does a case-insensitive substring match over title and
	// description. Not a search index.
	SearchCourses(ctx context.Context, query string) ([]domain.Course, error)

	// SetSyllabusKey records the object storage key of the course syllabus.
	SetSyllabusKey(ctx context.Context, courseID, key string) error
}
