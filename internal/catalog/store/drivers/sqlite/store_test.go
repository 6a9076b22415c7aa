package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/catalog/domain"
	"github.com/prepdeck/prepdeck/internal/catalog/store"
	"github.com/prepdeck/prepdeck/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newMigratedStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *Store, phone, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Phone:        phone,
		Email:        email,
		PasswordHash: "bcrypt-placeholder",
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedCourse(t *testing.T, st *Store, title string, branch domain.Branch) domain.Course {
	t.Helper()

	c := domain.Course{
		ID:     idx.New().String(),
		Title:  title,
		Branch: branch,
	}
	require.NoError(t, st.Courses().CreateCourse(context.Background(), c))
	return c
}

func TestCreateUserDuplicateMapping(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	seedUser(t, st, "9876543210", "a@example.com")

	t.Run("duplicate phone names the field", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID: idx.New().String(), Phone: "9876543210", Email: "b@example.com", PasswordHash: "x",
		})
		field, ok := store.IsDuplicate(err)
		require.True(t, ok)
		require.Equal(t, "phone", field)
	})

	t.Run("duplicate email names the field", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID: idx.New().String(), Phone: "9876543211", Email: "a@example.com", PasswordHash: "x",
		})
		field, ok := store.IsDuplicate(err)
		require.True(t, ok)
		require.Equal(t, "email", field)
	})
}

func TestGetUserByIdentifier(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "9876543210", "a@example.com")

	byPhone, err := st.Users().GetUserByIdentifier(ctx, "9876543210")
	require.NoError(t, err)
	require.Equal(t, u.ID, byPhone.ID)

	byEmail, err := st.Users().GetUserByIdentifier(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = st.Users().GetUserByIdentifier(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOTPLifecycle(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "9876543210", "a@example.com")

	expiry := time.Now().UTC().Add(10 * time.Minute).Truncate(time.Second)
	require.NoError(t, st.Users().SetOTP(ctx, u.ID, "123456", expiry))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.HasPendingOTP())
	require.Equal(t, "123456", *got.OTPCode)
	require.WithinDuration(t, expiry, *got.OTPExpiresAt, time.Second)

	// Overwrite on reissue
	require.NoError(t, st.Users().SetOTP(ctx, u.ID, "654321", expiry.Add(time.Minute)))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "654321", *got.OTPCode)

	// Consume is guarded on the stored code
	consumed, err := st.Users().ConsumeOTP(ctx, u.ID, "123456")
	require.NoError(t, err)
	require.False(t, consumed)
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.HasPendingOTP())

	consumed, err = st.Users().ConsumeOTP(ctx, u.ID, "654321")
	require.NoError(t, err)
	require.True(t, consumed)
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.HasPendingOTP())

	// Second consume finds nothing to take
	consumed, err = st.Users().ConsumeOTP(ctx, u.ID, "654321")
	require.NoError(t, err)
	require.False(t, consumed)
}

func TestClearExpiredOTPs(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	stale := seedUser(t, st, "9876543210", "stale@example.com")
	fresh := seedUser(t, st, "9876543211", "fresh@example.com")

	require.NoError(t, st.Users().SetOTP(ctx, stale.ID, "111111", now.Add(-time.Minute)))
	require.NoError(t, st.Users().SetOTP(ctx, fresh.ID, "222222", now.Add(time.Hour)))

	cleared, err := st.Users().ClearExpiredOTPs(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, cleared)

	got, err := st.Users().GetUserByID(ctx, stale.ID)
	require.NoError(t, err)
	require.False(t, got.HasPendingOTP())

	got, err = st.Users().GetUserByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.True(t, got.HasPendingOTP())
}

func TestBookmarkSetSemantics(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "9876543210", "a@example.com")
	c1 := seedCourse(t, st, "Algorithms", domain.BranchComputerScience)
	c2 := seedCourse(t, st, "Thermodynamics", domain.BranchMechanical)

	require.NoError(t, st.Users().AddBookmark(ctx, u.ID, c1.ID))
	require.NoError(t, st.Users().AddBookmark(ctx, u.ID, c2.ID))
	require.NoError(t, st.Users().AddBookmark(ctx, u.ID, c1.ID)) // duplicate add is ignored

	ids, err := st.Users().ListBookmarks(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{c1.ID, c2.ID}, ids)

	require.NoError(t, st.Users().RemoveBookmark(ctx, u.ID, c1.ID))
	require.NoError(t, st.Users().RemoveBookmark(ctx, u.ID, c1.ID)) // absent remove is a no-op

	ids, err = st.Users().ListBookmarks(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{c2.ID}, ids)
}

func TestGetCoursesByIDsPreservesOrder(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	c1 := seedCourse(t, st, "One", domain.BranchComputerScience)
	c2 := seedCourse(t, st, "Two", domain.BranchCivil)
	c3 := seedCourse(t, st, "Three", domain.BranchElectronics)

	got, err := st.Courses().GetCoursesByIDs(ctx, []string{c3.ID, "missing", c1.ID, c2.ID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, c3.ID, got[0].ID)
	require.Equal(t, c1.ID, got[1].ID)
	require.Equal(t, c2.ID, got[2].ID)
}

func TestCourseRoundTrip(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()

	price := int64(19900)
	c := domain.Course{
		ID:          idx.New().String(),
		Title:       "Structural Analysis",
		Branch:      domain.BranchCivil,
		Description: "Beams and trusses",
		Topics:      []string{"beams", "trusses"},
		PriceCents:  &price,
	}
	require.NoError(t, st.Courses().CreateCourse(ctx, c))

	got, err := st.Courses().GetCourseByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Title, got.Title)
	require.Equal(t, c.Topics, got.Topics)
	require.NotNil(t, got.PriceCents)
	require.Equal(t, price, *got.PriceCents)
	require.Empty(t, got.SyllabusKey)

	require.NoError(t, st.Courses().SetSyllabusKey(ctx, c.ID, "syllabus/x/y.pdf"))
	got, err = st.Courses().GetCourseByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "syllabus/x/y.pdf", got.SyllabusKey)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	st := newMigratedStore(t)
	ctx := context.Background()
	u := seedUser(t, st, "9876543210", "a@example.com")

	sentinel := store.ErrNotFound
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "bcrypt-placeholder", got.PasswordHash)
}
