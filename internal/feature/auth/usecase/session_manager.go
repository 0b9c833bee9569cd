package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/shared/apperr"
)

const (
	// SessionStorageKey is the fixed, namespaced key under which the signed-in user is persisted.
	SessionStorageKey = "yoga_app:user_session"

	// createdAtLayout matches the ISO8601 form used by existing user documents.
	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// CredentialStore abstracts the remote `users` collection keyed by email.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CredentialStore interface {
	// Get returns the account stored under email, or ErrUserNotFound.
	Get(ctx context.Context, email string) (*entity.Account, error)

	// Create writes a new account. It must never overwrite an existing document;
	// if the email is already taken it returns ErrUserAlreadyExists.
	Create(ctx context.Context, account *entity.Account) error
}

// LocalStorage is device-local string key/value storage.
type LocalStorage interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PasswordHasher derives and verifies password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns ErrInvalidCredentials if password does not match hash.
	Verify(hash, password string) error
}

// AttemptLimiter throttles login attempts per key.
type AttemptLimiter interface {
	Allow(key string) bool
	Reset(key string)
}

// SessionManager owns the authenticated-user record of this device.
// It persists the user to local storage so that the session survives restarts.
type SessionManager struct {
	creds   CredentialStore
	storage LocalStorage
	hasher  PasswordHasher
	limiter AttemptLimiter
	now     func() time.Time

	mu      sync.RWMutex
	user    *entity.User
	loading bool
}

// NewSessionManager creates a SessionManager. limiter may be nil to disable throttling.
// The manager starts in the loading state until RestoreSession is called.
func NewSessionManager(creds CredentialStore, storage LocalStorage, hasher PasswordHasher, limiter AttemptLimiter) *SessionManager {
	return &SessionManager{
		creds:   creds,
		storage: storage,
		hasher:  hasher,
		limiter: limiter,
		now:     time.Now,
		loading: true,
	}
}

// Session returns a snapshot of the current session state.
func (m *SessionManager) Session() entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return entity.Session{Loading: m.loading, User: copyUser(m.user)}
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (m *SessionManager) CurrentUser() *entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyUser(m.user)
}

// RestoreSession reads the persisted session at startup.
// It always resolves: read or decode failures are logged and treated as "no session".
// Loading is false once it returns. The caller bounds the wait through ctx.
func (m *SessionManager) RestoreSession(ctx context.Context) *entity.User {
	var restored *entity.User
	defer func() {
		m.mu.Lock()
		m.user = restored
		m.loading = false
		m.mu.Unlock()
	}()

	raw, ok, err := m.storage.Get(ctx, SessionStorageKey)
	if err != nil {
		slog.Error("failed to load user session", "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var u entity.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		slog.Error("failed to decode user session", "error", err)
		return nil
	}
	if u.Email == "" {
		slog.Warn("persisted user session has no email; ignoring")
		return nil
	}

	restored = &u
	slog.Info("user session restored", "email", u.Email)
	return copyUser(restored)
}

// Login authenticates email/password against the credential store.
// On success the user is stored in memory and in local storage.
// On any failure the current session is left unchanged.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if m.limiter != nil && !m.limiter.Allow(email) {
		return nil, ErrTooManyAttempts
	}

	account, err := m.creds.Get(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// ユーザーが存在しない場合もハッシュ比較を行い、応答時間を揃える
			_ = m.hasher.Verify(dummyHash, password)
			return nil, ErrUserNotFound
		}
		return nil, apperr.Remote("get credential", err)
	}

	// 壊れたドキュメントもパスワード誤りと同じ応答にし、アカウントの存在を明かさない
	if account.Credential.PasswordHash == "" {
		slog.Warn("credential document has no password hash", "email", email)
		return nil, ErrInvalidCredentials
	}
	if err := m.hasher.Verify(account.Credential.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := account.Profile
	if user.ID == "" {
		user.ID = email
	}
	if err := m.setSession(ctx, &user); err != nil {
		return nil, err
	}
	if m.limiter != nil {
		m.limiter.Reset(email)
	}
	return copyUser(&user), nil
}

// Register creates a new account and signs the user in without re-reading the password.
// An existing account for the same email (exact match) is never overwritten.
func (m *SessionManager) Register(ctx context.Context, data entity.Registration) (*entity.User, error) {
	if strings.TrimSpace(data.Email) == "" || data.Password == "" {
		return nil, ErrInvalidInput
	}

	_, err := m.creds.Get(ctx, data.Email)
	switch {
	case err == nil:
		return nil, ErrUserAlreadyExists
	case errors.Is(err, ErrUserNotFound):
	default:
		return nil, apperr.Remote("get credential", err)
	}

	hashed, err := m.hasher.Hash(data.Password)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		ID:        data.Email,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		CreatedAt: m.now().UTC().Format(createdAtLayout),
	}
	account := &entity.Account{
		Profile:    user,
		Credential: entity.Credential{Email: data.Email, PasswordHash: hashed},
	}
	if err := m.creds.Create(ctx, account); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, apperr.Remote("create credential", err)
	}

	if err := m.setSession(ctx, &user); err != nil {
		return nil, err
	}
	return copyUser(&user), nil
}

// Logout clears the in-memory session and deletes the persisted copy.
// It always succeeds; a storage failure is only logged.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if err := m.storage.Delete(ctx, SessionStorageKey); err != nil {
		slog.Warn("failed to delete persisted user session", "error", err)
	}
}

// setSession persists u and then makes it the current user.
func (m *SessionManager) setSession(ctx context.Context, u *entity.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user session: %w", err)
	}
	if err := m.storage.Set(ctx, SessionStorageKey, string(data)); err != nil {
		return apperr.Remote("save user session", err)
	}

	m.mu.Lock()
	m.user = copyUser(u)
	m.loading = false
	m.mu.Unlock()
	return nil
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
