package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
)

// BookmarkService maintains the per-user set of course references. Add and
// remove are idempotent and atomic at the store level. References are only
// resolved at read time; a bookmark pointing at a deleted course is omitted
// from listings, not treated as an error.
type BookmarkService struct {
	Store store.Store
}

// Add records courseID in the user's bookmark set. Adding a reference that is
// already present is a no-op.
func (s *BookmarkService) Add(ctx context.Context, userID, courseID string) error {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return validationErr("course id must not be empty")
	}

	// The user behind a valid token may have been deleted out-of-band.
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.Store.Users().AddBookmark(ctx, userID, courseID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// Remove drops courseID from the user's bookmark set. Removing an absent
// reference is a no-op.
func (s *BookmarkService) Remove(ctx context.Context, userID, courseID string) error {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return validationErr("course id must not be empty")
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.Store.Users().RemoveBookmark(ctx, userID, courseID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// List resolves the user's bookmarked course IDs against the catalog.
// Unresolvable references are silently omitted.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]domain.Course, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.Store.Users().ListBookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	courses, err := s.Store.Courses().GetCoursesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve bookmarks: %w", err)
	}
	return courses, nil
}
