package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helioslabs/phonebook/internal/api/store"
	"github.com/helioslabs/phonebook/internal/api/store/drivers/sqlite"
	"github.com/helioslabs/phonebook/pkg/cryptox"
	"github.com/helioslabs/phonebook/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "phonebook-svc-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// recordingMailer captures sends for assertions and can be told to fail.
type recordingMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  bool
	errIs error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return m.errIs
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *recordingMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func newAuthService(t *testing.T, st store.Store, mailer *recordingMailer) *AuthService {
	t.Helper()

	secret := []byte("test-signing-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "phonebook-test")
	require.NoError(t, err)

	return &AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: verifier,
		Mailer:   mailer,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
		Issuer:   "phonebook-test",
		BaseURL:  "http://localhost:3000",
	}
}

// registerVerified runs the full register+verify flow and returns the user's
// email and password for login.
func registerVerified(t *testing.T, svc *AuthService, email string) (string, string) {
	t.Helper()

	const password = "correct horse battery"
	user, err := svc.Register(context.Background(), email, password, "")
	require.NoError(t, err)
	require.NoError(t, svc.Verify(context.Background(), user.VerificationToken))
	return email, password
}
