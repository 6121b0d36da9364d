package ranking

import (
	"context"

	"github.com/vfg2006/store-analytics-api/infrastructure/repository"
	"github.com/vfg2006/store-analytics-api/internal/domain"
)

type RankingService interface {
	GetDriverRanking(ctx context.Context) (*domain.DriverRankingResponse, error)
}

type DriverRankingService struct {
	DriverRankingRepository repository.DriverRankingRepository
}

func NewDriverRankingService(driverRankingRepository repository.DriverRankingRepository) RankingService {
	return &DriverRankingService{
		DriverRankingRepository: driverRankingRepository,
	}
}

func (s *DriverRankingService) GetDriverRanking(ctx context.Context) (*domain.DriverRankingResponse, error) {
	ranking, err := s.DriverRankingRepository.GetLatestRanking(ctx)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
