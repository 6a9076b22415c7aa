package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prepdeck/prepdeck/internal/catalog/service"
	"github.com/prepdeck/prepdeck/internal/catalog/store/drivers/sqlite"
	"github.com/prepdeck/prepdeck/pkg/catalogsdk"
	"github.com/prepdeck/prepdeck/pkg/jwtx"
	"github.com/prepdeck/prepdeck/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// recordingDeliverer keeps the last issued reset code for assertions.
type recordingDeliverer struct {
	code string
}

func (d *recordingDeliverer) DeliverOTP(_ context.Context, _, code string) error {
	d.code = code
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingDeliverer) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), "catalog-test")
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "catalog-test",
		Level:   "error",
		Format:  "text",
	})

	tokens := &service.TokenService{Signer: signer, Issuer: "catalog-test"}
	deliverer := &recordingDeliverer{}

	router := NewRouter(verifier, "test", st, logger)
	router.UserService = &service.UserService{Store: st, Tokens: tokens}
	router.RecoveryService = &service.RecoveryService{Store: st, Deliverer: deliverer}
	router.BookmarkService = &service.BookmarkService{Store: st}
	router.CourseService = &service.CourseService{Store: st}
	// No SyllabusService: the test servers run without object storage, like
	// a deployment with no bucket configured.
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, deliverer
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *catalogsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	client := catalogsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	registered, err := client.Register(ctx, "9876543210", "user@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, registered.UserID)
	require.Equal(t, "9876543210", registered.Phone)

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := client.Register(ctx, "9876543210", "other@example.com", "secret")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeDuplicateIdentity)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := client.Register(ctx, "123", "user2@example.com", "secret")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeInvalidRequest)
	})

	t.Run("login by phone or email", func(t *testing.T) {
		_, err := client.Login(ctx, "9876543210", "secret")
		require.NoError(t, err)

		session, err := client.Login(ctx, "user@example.com", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, session.AccessToken())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "9876543210", "wrong")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeInvalidCredentials)
	})
}

func TestBookmarkEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	client := catalogsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	_, err := client.Register(ctx, "9876543210", "user@example.com", "secret")
	require.NoError(t, err)
	session, err := client.Login(ctx, "9876543210", "secret")
	require.NoError(t, err)

	course := createCourse(t, srv.URL, catalogsdk.CourseRequest{Title: "Algorithms", Branch: "cse"})

	t.Run("rejects missing token", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/users/bookmarks")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		bad := client.NewSessionFromToken("not-a-jwt")
		_, err := bad.ListBookmarks(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, catalogsdk.ErrorCodeInvalidToken)
	})

	t.Run("add list remove round trip", func(t *testing.T) {
		require.NoError(t, session.AddBookmark(ctx, course.ID))
		require.NoError(t, session.AddBookmark(ctx, course.ID)) // idempotent

		got, err := session.ListBookmarks(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, course.ID, got[0].ID)

		require.NoError(t, session.RemoveBookmark(ctx, course.ID))
		got, err = session.ListBookmarks(ctx)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestRecoveryEndpoints(t *testing.T) {
	srv, deliverer := newTestServer(t)
	client := catalogsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	_, err := client.Register(ctx, "9876543210", "user@example.com", "original")
	require.NoError(t, err)

	t.Run("verify without pending code", func(t *testing.T) {
		err := client.VerifyOTP(ctx, "9876543210", "123456")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeNoPendingOTP)
	})

	require.NoError(t, client.RequestOTP(ctx, "9876543210"))
	require.NotEmpty(t, deliverer.code)

	t.Run("wrong code", func(t *testing.T) {
		err := client.VerifyOTP(ctx, "9876543210", "000000")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeOTPMismatch)
	})

	t.Run("verify then reset", func(t *testing.T) {
		require.NoError(t, client.VerifyOTP(ctx, "9876543210", deliverer.code))
		require.NoError(t, client.ResetPassword(ctx, "9876543210", deliverer.code, "updated"))

		_, err := client.Login(ctx, "9876543210", "original")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeInvalidCredentials)

		_, err = client.Login(ctx, "9876543210", "updated")
		require.NoError(t, err)
	})

	t.Run("consumed code cannot be replayed", func(t *testing.T) {
		err := client.ResetPassword(ctx, "9876543210", deliverer.code, "again")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeNoPendingOTP)
	})

	t.Run("unknown phone", func(t *testing.T) {
		err := client.RequestOTP(ctx, "0000000000")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeNotFound)
	})
}

func TestCourseEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	client := catalogsdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	created := createCourse(t, srv.URL, catalogsdk.CourseRequest{
		Title:       "Data Structures",
		Branch:      "cse",
		Description: "Trees and graphs",
		Topics:      []string{"trees", "graphs"},
	})
	createCourse(t, srv.URL, catalogsdk.CourseRequest{Title: "Thermodynamics", Branch: "mech"})

	t.Run("get", func(t *testing.T) {
		got, err := client.GetCourse(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Data Structures", got.Title)
		require.Equal(t, []string{"trees", "graphs"}, got.Topics)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := client.GetCourse(ctx, "01K00000000000000000000000")
		requireAPIError(t, err, http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
	})

	t.Run("list filters by branch", func(t *testing.T) {
		all, err := client.ListCourses(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)

		cse, err := client.ListCourses(ctx, "cse")
		require.NoError(t, err)
		require.Len(t, cse, 1)
		require.Equal(t, created.ID, cse[0].ID)
	})

	t.Run("list rejects unknown branch", func(t *testing.T) {
		_, err := client.ListCourses(ctx, "chem")
		requireAPIError(t, err, http.StatusBadRequest, catalogsdk.ErrorCodeInvalidRequest)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got, err := client.SearchCourses(ctx, "tHeRmO")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Thermodynamics", got[0].Title)
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, err := client.UpdateCourse(ctx, created.ID, catalogsdk.CourseRequest{
			Title:  "Advanced Data Structures",
			Branch: "cse",
		})
		require.NoError(t, err)
		require.Equal(t, "Advanced Data Structures", updated.Title)

		require.NoError(t, client.DeleteCourse(ctx, created.ID))
		_, err = client.GetCourse(ctx, created.ID)
		requireAPIError(t, err, http.StatusNotFound, catalogsdk.ErrorCodeNotFound)
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestSyllabusRoutesDisabledWithoutStorage(t *testing.T) {
	srv, _ := newTestServer(t)

	course := createCourse(t, srv.URL, catalogsdk.CourseRequest{Title: "Signals", Branch: "ece"})

	resp, err := http.Get(srv.URL + "/courses/" + course.ID + "/syllabus")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/courses/"+course.ID+"/syllabus", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// createCourse provisions a catalog entry through the write endpoint.
func createCourse(t *testing.T, baseURL string, req catalogsdk.CourseRequest) catalogsdk.CourseResponse {
	t.Helper()

	client := catalogsdk.NewSDKClient(baseURL)
	out, err := client.CreateCourse(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	return *out
}
