package service

import (
	"context"
	"testing"

	"github.com/prepdeck/prepdeck/internal/catalog/store/drivers/sqlite"
	"github.com/prepdeck/prepdeck/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()

	signer, err := jwtx.NewSignerHS256([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	return &TokenService{Signer: signer, Issuer: "catalog-test"}
}

// captureDeliverer records the last delivered code instead of sending it.
type captureDeliverer struct {
	phone string
	code  string
}

func (d *captureDeliverer) DeliverOTP(_ context.Context, phone, code string) error {
	d.phone = phone
	d.code = code
	return nil
}
