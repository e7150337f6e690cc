package credstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// Storage keys. Presence of KeyToken/KeyAdminToken is the sole "logged in"
// signal on the client; token contents are never inspected here.
const (
	KeyToken      = "token"
	KeyAdminToken = "adminToken"
	KeyUser       = "user"
	KeyUserRole   = "userRole"
	KeyAdminEmail = "adminEmail"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Session answers "is there a valid-looking session for role X" and manages
// the stored token lifecycle. There is no refresh or expiry detection: an
// expired token is discovered when a request comes back 401, at which point
// the caller sends the user back to login.
type Session struct {
	store Store
}

func NewSession(store Store) *Session {
	return &Session{store: store}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	return s.store.Get(ctx, KeyToken)
}

func (s *Session) AdminToken(ctx context.Context) (string, error) {
	return s.store.Get(ctx, KeyAdminToken)
}

func (s *Session) IsLoggedIn(ctx context.Context) bool {
	tok, err := s.Token(ctx)
	return err == nil && tok != ""
}

func (s *Session) IsAdminLoggedIn(ctx context.Context) bool {
	tok, err := s.AdminToken(ctx)
	return err == nil && tok != ""
}

// SaveLogin persists a student session: token, cached profile and role marker.
func (s *Session) SaveLogin(ctx context.Context, token string, user domain.User) error {
	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	if err := s.SaveCachedUser(ctx, user); err != nil {
		return err
	}
	return s.store.Set(ctx, KeyUserRole, RoleStudent)
}

// SaveAdminLogin persists an admin session under its own key namespace,
// independent of any student session.
func (s *Session) SaveAdminLogin(ctx context.Context, token string, admin domain.AdminProfile) error {
	if err := s.store.Set(ctx, KeyAdminToken, token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyAdminEmail, admin.Email); err != nil {
		return err
	}
	return s.store.Set(ctx, KeyUserRole, RoleAdmin)
}

func (s *Session) CachedUser(ctx context.Context) (domain.User, error) {
	raw, err := s.store.Get(ctx, KeyUser)
	if err != nil {
		return domain.User{}, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.User{}, fmt.Errorf("decode cached user: %w", err)
	}
	return user, nil
}

func (s *Session) SaveCachedUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}
	return s.store.Set(ctx, KeyUser, string(raw))
}

func (s *Session) AdminEmail(ctx context.Context) string {
	email, err := s.store.Get(ctx, KeyAdminEmail)
	if err != nil {
		return ""
	}
	return email
}

// Logout clears every field tied to the student identity so nothing stale
// survives a role switch.
func (s *Session) Logout(ctx context.Context) error {
	for _, key := range []string{KeyToken, KeyUser, KeyUserRole} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// AdminLogout clears every field tied to the admin identity.
func (s *Session) AdminLogout(ctx context.Context) error {
	for _, key := range []string{KeyAdminToken, KeyAdminEmail, KeyUserRole} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
