package services

import (
	"wealthestate/internal/domain"
	"wealthestate/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// AuthService implements the demo sign-in: one fixed administrative credential
// pair; every other email/password combination signs in as a demo seller with
// no credential check at all.
type AuthService struct {
	Users      *repos.UserRepo
	AdminEmail string
	adminHash  []byte
}

func NewAuthService(users *repos.UserRepo, adminEmail, adminPassword string) *AuthService {
	h, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	return &AuthService{Users: users, AdminEmail: adminEmail, adminHash: h}
}

// Login binds a user to the session. It never fails for credential reasons:
// the admin pair yields the admin account, anything else a demo seller bound
// to the submitted email.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	var u domain.User
	if email == s.AdminEmail && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		u = domain.User{
			ID:         "admin",
			Name:       "Super Admin",
			Email:      s.AdminEmail,
			Phone:      "000",
			Role:       domain.RoleAdmin,
			IsVerified: true,
		}
	} else {
		u = domain.User{
			ID:            "user1",
			Name:          "Demo User",
			Email:         email,
			Phone:         "555-0000",
			Role:          domain.RoleSeller,
			IsVerified:    true,
			PropertyCount: 1,
		}
	}
	if err := s.Users.Upsert(u); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
