package service

import (
	"context"
	"strings"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/idx"
)

// CourseParams are the writable fields of a course.
type CourseParams struct {
	Title       string
	Branch      string
	Description string
	Topics      []string
	PriceCents  *int64
}

type CourseService struct {
	Store store.Store
}

func (p CourseParams) validate() (domain.Branch, error) {
	if strings.TrimSpace(p.Title) == "" {
		return "", validationErr("title must not be empty")
	}
	branch := domain.Branch(strings.ToLower(strings.TrimSpace(p.Branch)))
	if !branch.Valid() {
		return "", validationErr("unknown branch")
	}
	if p.PriceCents != nil && *p.PriceCents < 0 {
		return "", validationErr("price must not be negative")
	}
	return branch, nil
}

func (s *CourseService) Create(ctx context.Context, p CourseParams) (domain.Course, error) {
	branch, err := p.validate()
	if err != nil {
		return domain.Course{}, err
	}

	course := domain.Course{
		ID:          idx.New().String(),
		Title:       strings.TrimSpace(p.Title),
		Branch:      branch,
		Description: p.Description,
		Topics:      p.Topics,
		PriceCents:  p.PriceCents,
	}

	if err := s.Store.Courses().CreateCourse(ctx, course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	return s.Store.Courses().GetCourseByID(ctx, id)
}

func (s *CourseService) Update(ctx context.Context, id string, p CourseParams) (domain.Course, error) {
	branch, err := p.validate()
	if err != nil {
		return domain.Course{}, err
	}

	course, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}

	course.Title = strings.TrimSpace(p.Title)
	course.Branch = branch
	course.Description = p.Description
	course.Topics = p.Topics
	course.PriceCents = p.PriceCents

	if err := s.Store.Courses().UpdateCourse(ctx, course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

// Delete removes the course from the catalog. Bookmarks referencing it are
// left in place and become unresolvable.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.Store.Courses().DeleteCourse(ctx, id)
}

// List returns courses, optionally filtered by branch. An empty branch means
// the whole catalog.
func (s *CourseService) List(ctx context.Context, branch string) ([]domain.Course, error) {
	b := domain.Branch(strings.ToLower(strings.TrimSpace(branch)))
	if b != "" && !b.Valid() {
		return nil, validationErr("unknown branch")
	}
	return s.Store.Courses().ListCourses(ctx, b)
}

// Search runs a case-insensitive substring filter over titles and
// descriptions, matching the behaviour of the catalog's original free-text
// search. No ranking, no tokenization.
func (s *CourseService) Search(ctx context.Context, query string) ([]domain.Course, error) {
	if strings.TrimSpace(query) == "" {
		return nil, validationErr("query must not be empty")
	}
	return s.Store.Courses().SearchCourses(ctx, query)
}
