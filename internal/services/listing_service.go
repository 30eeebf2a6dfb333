package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wealthestate/internal/domain"
	"wealthestate/internal/repos"
	"wealthestate/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrQuotaExceeded  = errors.New("maximum 5 properties allowed per seller")
	ErrMissingImages  = errors.New("at least one image is required")
	ErrUploadInFlight = errors.New("an upload is already in progress for this session")
)

// FallbackDescription replaces the generated text whenever the description
// collaborator fails; generation failure never blocks listing creation.
const FallbackDescription = "Failed to generate description. Please write manually."

const maxListingsPerSeller = 5

const anonymousWhatsApp = "123456"

// Describer is the external text-generation collaborator. It may fail or
// time out; callers substitute FallbackDescription.
type Describer interface {
	Describe(ctx context.Context, title, propertyType, features string) (string, error)
}

type ListingDraft struct {
	Title     string
	Type      string
	Price     float64
	Location  string
	Features  string
	ImageURLs []string
}

type ListingService struct {
	Props *repos.PropertyRepo
	Users *repos.UserRepo
	Desc  Describer

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewListingService(props *repos.PropertyRepo, users *repos.UserRepo, desc Describer) *ListingService {
	return &ListingService{Props: props, Users: users, Desc: desc, inflight: make(map[string]struct{})}
}

// Browse returns the listings for a browse tab. The "all" sentinel (and any
// unknown tab) yields the full collection, newest first.
func (s *ListingService) Browse(tab string) ([]domain.Property, error) {
	if t, ok := domain.TypeForTab(tab); ok {
		return s.Props.ListByType(t)
	}
	return s.Props.List()
}

func (s *ListingService) Get(id string) (domain.Property, error) {
	return s.Props.Get(id)
}

// Delete removes a listing. Absent ids are a no-op; the admin panel only
// offers ids it just displayed.
func (s *ListingService) Delete(id string) error {
	return s.Props.Delete(id)
}

// Upload runs the listing-creation workflow: quota check, image presence
// check, description generation (with fallback), record construction, store
// insert and owner counter increment. The session id keys a single-submission
// guard for the duration of the generation call.
func (s *ListingService) Upload(ctx context.Context, sid string, u *domain.User, d ListingDraft) (domain.Property, error) {
	if !s.begin(sid) {
		return domain.Property{}, ErrUploadInFlight
	}
	defer s.end(sid)

	if u != nil && !u.IsAdmin() && u.PropertyCount >= maxListingsPerSeller {
		return domain.Property{}, ErrQuotaExceeded
	}
	if len(d.ImageURLs) == 0 {
		return domain.Property{}, ErrMissingImages
	}

	desc, err := s.Desc.Describe(ctx, d.Title, d.Type, d.Features)
	if err != nil || desc == "" {
		desc = FallbackDescription
	}

	p := domain.Property{
		ID:          uuid.NewString(),
		Title:       d.Title,
		Description: desc,
		Price:       d.Price,
		Location:    d.Location,
		Type:        d.Type,
		ImagesJSON:  domain.EncodeImages(d.ImageURLs),
		CreatedAt:   time.Now().UnixMilli(),
	}
	if u != nil {
		p.SellerID = u.ID
		p.SellerName = u.Name
		p.SellerPhone = u.Phone
		p.SellerEmail = u.Email
		p.SellerWhatsApp = validate.Digits(u.Phone)
	} else {
		p.SellerID = "anon"
		p.SellerName = "Anonymous"
		p.SellerPhone = "N/A"
		p.SellerEmail = "N/A"
	}
	if p.SellerWhatsApp == "" {
		p.SellerWhatsApp = anonymousWhatsApp
	}

	if err := s.Props.Insert(p); err != nil {
		return domain.Property{}, err
	}
	if u != nil {
		if err := s.Users.IncrementPropertyCount(u.ID); err != nil {
			return domain.Property{}, err
		}
		u.PropertyCount++
	}
	return p, nil
}

func (s *ListingService) begin(sid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sid]; busy {
		return false
	}
	s.inflight[sid] = struct{}{}
	return true
}

func (s *ListingService) end(sid string) {
	s.mu.Lock()
	delete(s.inflight, sid)
	s.mu.Unlock()
}
