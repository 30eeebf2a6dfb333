package services_test

import (
	"testing"

	"wealthestate/internal/domain"
	"wealthestate/internal/repos"
	"wealthestate/internal/services"
)

func newAuthFixture(t *testing.T) (*services.AuthService, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	users := repos.NewUserRepo(db)
	return services.NewAuthService(users, "admin@wealth.com", "Wealth@dm1n!"), users
}

func TestAdminLoginEntersAdminMode(t *testing.T) {
	svc, users := newAuthFixture(t)

	u, err := svc.Login("sid-a", "admin@wealth.com", "Wealth@dm1n!")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "admin" || u.Role != domain.RoleAdmin {
		t.Fatalf("want the admin account, got %+v", u)
	}

	cur, err := users.SessionUser("sid-a")
	if err != nil || cur.Role != domain.RoleAdmin {
		t.Fatalf("admin session not established: %v %+v", err, cur)
	}
}

func TestAdminEmailWrongPasswordIsDemo(t *testing.T) {
	svc, _ := newAuthFixture(t)

	u, err := svc.Login("sid-b", "admin@wealth.com", "not-the-password")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role == domain.RoleAdmin {
		t.Fatal("wrong admin password must not grant admin")
	}
}

// Demo sign-in never rejects: any pair yields a seller bound to the email.
func TestDemoLoginAlwaysSucceeds(t *testing.T) {
	svc, users := newAuthFixture(t)

	for _, creds := range [][2]string{
		{"somebody@example.com", "whatever"},
		{"another@example.com", ""},
	} {
		u, err := svc.Login("sid-c", creds[0], creds[1])
		if err != nil {
			t.Fatalf("demo login rejected %q: %v", creds[0], err)
		}
		if u.Role != domain.RoleSeller || u.Email != creds[0] {
			t.Fatalf("want a demo seller bound to the email, got %+v", u)
		}
		if u.PropertyCount != 1 {
			t.Fatalf("demo seller starts with one listing owned, got %d", u.PropertyCount)
		}
	}

	cur, err := users.SessionUser("sid-c")
	if err != nil || cur.Email != "another@example.com" {
		t.Fatalf("session should follow the latest login: %v %+v", err, cur)
	}
}

func TestLogoutUnbindsSession(t *testing.T) {
	svc, users := newAuthFixture(t)

	if _, err := svc.Login("sid-d", "x@e.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout("sid-d"); err != nil {
		t.Fatal(err)
	}
	if _, err := users.SessionUser("sid-d"); err == nil {
		t.Fatal("session should be unbound after logout")
	}
}
