package credstore

import (
	"context"
	"testing"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

func TestSessionLoginLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	session := NewSession(store)

	if session.IsLoggedIn(ctx) {
		t.Error("logged in before SaveLogin")
	}

	user := domain.User{ID: "u1", Name: "Asha", ClassID: "c9"}
	if err := session.SaveLogin(ctx, "tok", user); err != nil {
		t.Fatal(err)
	}

	if !session.IsLoggedIn(ctx) {
		t.Error("not logged in after SaveLogin")
	}
	cached, err := session.CachedUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cached.Name != "Asha" || cached.ClassID != "c9" {
		t.Errorf("cached user = %+v", cached)
	}
	if role, _ := store.Get(ctx, KeyUserRole); role != RoleStudent {
		t.Errorf("role = %q", role)
	}

	if err := session.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if session.IsLoggedIn(ctx) {
		t.Error("still logged in after Logout")
	}
	if _, err := session.CachedUser(ctx); err != ErrNotFound {
		t.Errorf("cached user survives logout: %v", err)
	}
}

func TestAdminSessionIndependentOfStudent(t *testing.T) {
	ctx := context.Background()
	session := NewSession(NewMemory())

	if err := session.SaveLogin(ctx, "studtok", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}
	if err := session.SaveAdminLogin(ctx, "admtok", domain.AdminProfile{Email: "ops@example.com"}); err != nil {
		t.Fatal(err)
	}

	if !session.IsLoggedIn(ctx) || !session.IsAdminLoggedIn(ctx) {
		t.Fatal("both sessions should be live")
	}
	if got := session.AdminEmail(ctx); got != "ops@example.com" {
		t.Errorf("admin email = %q", got)
	}

	if err := session.AdminLogout(ctx); err != nil {
		t.Fatal(err)
	}
	if session.IsAdminLoggedIn(ctx) {
		t.Error("admin still logged in")
	}
	if !session.IsLoggedIn(ctx) {
		t.Error("student session lost on admin logout")
	}

	if err := session.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if session.IsLoggedIn(ctx) {
		t.Error("student still logged in")
	}
}
