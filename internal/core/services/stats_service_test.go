package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/core/services"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.StatsSvcFacade
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewStatsService(suite.mockJournalRepo, suite.mockUserRepo)
}

func (suite *StatsServiceTestSuite) TestComputeStats() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockJournalRepo.On("SumCountersByAuthor", ctx, userID).Return(42, 180, 12, nil).Once()
	suite.mockJournalRepo.On("CountDistinctCreationDays", ctx, userID, mock.AnythingOfType("time.Time")).Return(5, nil).Once()

	stats, err := suite.service.ComputeStats(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(42, stats.TotalLikes)
	suite.Equal(180, stats.TotalReads)
	suite.Equal(12, stats.JournalsCount)
	suite.Equal(5, stats.RecentActivity)
	// 5 of 30 days, rounded: 17.
	suite.Equal(17, stats.Consistency)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateStats", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatsServiceTestSuite) TestRefreshStats_WritesSnapshot() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockJournalRepo.On("SumCountersByAuthor", ctx, userID).Return(10, 20, 3, nil).Once()
	suite.mockJournalRepo.On("CountDistinctCreationDays", ctx, userID, mock.AnythingOfType("time.Time")).Return(30, nil).Once()
	suite.mockUserRepo.On("UpdateStats", ctx, userID, mock.MatchedBy(func(stats domain.UserStats) bool {
		return stats.TotalLikes == 10 && stats.Consistency == 100
	})).Return(nil).Once()

	stats, err := suite.service.RefreshStats(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(100, stats.Consistency)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
