package court

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type CourtRepository interface {
	GetActiveCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id string) (Court, error)
	InsertCourt(ctx context.Context, court Court) (Court, error)
	SetCourtActive(ctx context.Context, id string, active bool) error
}

const catalogKey = "active-courts"

type Service struct {
	repo  CourtRepository
	cache *cache.Cache
}

func NewService(repo CourtRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetActiveCourts serves the catalog through a short-lived cache; the court
// list only changes on admin edits.
func (s *Service) GetActiveCourts(ctx context.Context) ([]Court, error) {
	if cached, found := s.cache.Get(catalogKey); found {
		return cached.([]Court), nil
	}

	courts, err := s.repo.GetActiveCourts(ctx)

	if err != nil {
		return nil, err
	}

	s.cache.Set(catalogKey, courts, cache.DefaultExpiration)

	return courts, nil
}

func (s *Service) FindCourtByID(ctx context.Context, id string) (Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *Service) CreateCourt(ctx context.Context, court Court) (Court, error) {
	inserted, err := s.repo.InsertCourt(ctx, court)

	if err == nil {
		s.cache.Delete(catalogKey)
	}

	return inserted, err
}

func (s *Service) SetCourtActive(ctx context.Context, id string, active bool) error {
	err := s.repo.SetCourtActive(ctx, id, active)

	if err == nil {
		s.cache.Delete(catalogKey)
	}

	return err
}
