package service

import (
	"context"
	"testing"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/stretchr/testify/require"
)

func TestCourseValidation(t *testing.T) {
	t.Parallel()

	svc := &CourseService{Store: newTestStore(t)}
	ctx := context.Background()

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := svc.Create(ctx, CourseParams{Title: "  ", Branch: "cse"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects unknown branch", func(t *testing.T) {
		_, err := svc.Create(ctx, CourseParams{Title: "Algorithms", Branch: "chem"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		price := int64(-100)
		_, err := svc.Create(ctx, CourseParams{Title: "Algorithms", Branch: "cse", PriceCents: &price})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("branch is case-insensitive", func(t *testing.T) {
		course, err := svc.Create(ctx, CourseParams{Title: "Algorithms", Branch: "CSE"})
		require.NoError(t, err)
		require.Equal(t, domain.BranchComputerScience, course.Branch)
	})
}

func TestCourseListAndSearch(t *testing.T) {
	t.Parallel()

	svc := &CourseService{Store: newTestStore(t)}
	ctx := context.Background()

	seed := []CourseParams{
		{Title: "Data Structures", Branch: "cse", Description: "Trees, heaps and graphs", Topics: []string{"trees", "graphs"}},
		{Title: "Operating Systems", Branch: "cse", Description: "Scheduling and memory"},
		{Title: "Thermodynamics", Branch: "mech", Description: "Heat and work"},
	}
	for _, p := range seed {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	t.Run("list all", func(t *testing.T) {
		got, err := svc.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("list filters by branch", func(t *testing.T) {
		got, err := svc.List(ctx, "cse")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, c := range got {
			require.Equal(t, domain.BranchComputerScience, c.Branch)
		}
	})

	t.Run("list rejects unknown branch", func(t *testing.T) {
		_, err := svc.List(ctx, "chem")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("search is case-insensitive over titles", func(t *testing.T) {
		got, err := svc.Search(ctx, "tHeRmO")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Thermodynamics", got[0].Title)
	})

	t.Run("search matches descriptions", func(t *testing.T) {
		got, err := svc.Search(ctx, "scheduling")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Operating Systems", got[0].Title)
	})

	t.Run("search rejects empty query", func(t *testing.T) {
		_, err := svc.Search(ctx, "   ")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestCourseUpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := &CourseService{Store: newTestStore(t)}
	ctx := context.Background()

	course, err := svc.Create(ctx, CourseParams{Title: "Signals", Branch: "ece"})
	require.NoError(t, err)

	t.Run("update replaces fields", func(t *testing.T) {
		price := int64(49900)
		updated, err := svc.Update(ctx, course.ID, CourseParams{
			Title:      "Signals and Systems",
			Branch:     "ece",
			Topics:     []string{"fourier", "laplace"},
			PriceCents: &price,
		})
		require.NoError(t, err)
		require.Equal(t, "Signals and Systems", updated.Title)
		require.Equal(t, []string{"fourier", "laplace"}, updated.Topics)

		got, err := svc.Get(ctx, course.ID)
		require.NoError(t, err)
		require.Equal(t, "Signals and Systems", got.Title)
		require.NotNil(t, got.PriceCents)
		require.Equal(t, price, *got.PriceCents)
	})

	t.Run("update of unknown course", func(t *testing.T) {
		_, err := svc.Update(ctx, "01K00000000000000000000000", CourseParams{Title: "X", Branch: "cse"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete removes the course", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, course.ID))
		_, err := svc.Get(ctx, course.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
