package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"wealthestate/internal/domain"
	"wealthestate/internal/repos"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode           = errors.New("invalid verification code")
	ErrNoPendingRegistration = errors.New("no registration awaiting verification")
)

type RegistrationDraft struct {
	Name          string
	Email         string
	Phone         string
	Role          string
	PaymentMethod string
	BankAccount   string
}

// pending is the AwaitingVerification state: the draft profile plus the
// generated one-time code, held only in memory until verified or cancelled.
type pending struct {
	draft RegistrationDraft
	code  string
}

// RegisterService drives the two-step registration: collect a profile, issue
// a 6-digit code, promote the draft to a verified user on an exact match.
// The code is surfaced back to the same session (simulated out-of-band
// delivery); there is no expiry and no attempt limit.
type RegisterService struct {
	Users *repos.UserRepo

	mu      sync.Mutex
	pending map[string]*pending // keyed by session id
}

func NewRegisterService(users *repos.UserRepo) *RegisterService {
	return &RegisterService{Users: users, pending: make(map[string]*pending)}
}

// Begin stores the draft and returns the generated verification code.
// Re-submitting replaces any earlier draft for the session.
func (s *RegisterService) Begin(sid string, d RegistrationDraft) string {
	// Demo credential, not a security mechanism.
	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	s.mu.Lock()
	s.pending[sid] = &pending{draft: d, code: code}
	s.mu.Unlock()
	return code
}

// Pending reports whether the session has a registration awaiting its code.
func (s *RegisterService) Pending(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[sid]
	return ok
}

// Verify compares the submitted code with the generated one. A match
// promotes the draft to a verified user and discards the pending entry; a
// mismatch keeps the entry so the user can retry indefinitely.
func (s *RegisterService) Verify(sid, code string) (*domain.User, error) {
	s.mu.Lock()
	p, ok := s.pending[sid]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoPendingRegistration
	}
	if code != p.code {
		return nil, ErrInvalidCode
	}

	u := domain.User{
		ID:            uuid.NewString(),
		Name:          p.draft.Name,
		Email:         p.draft.Email,
		Phone:         p.draft.Phone,
		Role:          p.draft.Role,
		PaymentMethod: p.draft.PaymentMethod,
		BankAccount:   p.draft.BankAccount,
		IsVerified:    true,
		PropertyCount: 0,
	}
	if err := s.Users.Upsert(u); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.pending, sid)
	s.mu.Unlock()
	return &u, nil
}

// Cancel discards the pending registration, returning to profile collection.
func (s *RegisterService) Cancel(sid string) {
	s.mu.Lock()
	delete(s.pending, sid)
	s.mu.Unlock()
}
