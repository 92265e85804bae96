package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/unimeet/unimeet-api/internal/domain"
	"github.com/unimeet/unimeet-api/internal/persistence"
	"github.com/unimeet/unimeet-api/internal/repository"
	apperrors "github.com/unimeet/unimeet-api/pkg/util"
)

const (
	clubListCacheKey = "clubs:all"
	clubListCacheTTL = time.Minute
)

// ClubService lists clubs ordered by name. Clubs are read-only through the
// API, which makes the listing a natural target for a short-lived cache.
type ClubService struct {
	clubs  repository.ClubRepository
	cache  *persistence.Redis
	logger *zap.Logger
}

// NewClubService constructs the service. cache may be nil.
func NewClubService(clubs repository.ClubRepository, cache *persistence.Redis, logger *zap.Logger) *ClubService {
	return &ClubService{clubs: clubs, cache: cache, logger: logger}
}

// List returns all clubs ascending by name. Cache failures fall through to
// the repository.
func (s *ClubService) List(ctx context.Context) ([]domain.Club, error) {
	if cached, err := s.cache.Get(ctx, clubListCacheKey); err == nil {
		var clubs []domain.Club
		if err := json.Unmarshal(cached, &clubs); err == nil {
			return clubs, nil
		}
	}

	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if encoded, err := json.Marshal(clubs); err == nil {
		if err := s.cache.Set(ctx, clubListCacheKey, encoded, clubListCacheTTL); err != nil {
			s.logger.Warn("club list cache write failed", zap.Error(err))
		}
	}
	return clubs, nil
}
