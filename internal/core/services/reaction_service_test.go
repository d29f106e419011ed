package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/core/services"
)

type ReactionServiceTestSuite struct {
	suite.Suite
	mockReactionRepo *MockReactionRepository
	mockJournalRepo  *MockJournalRepository
	service          portssvc.ReactionSvcFacade
}

func (suite *ReactionServiceTestSuite) SetupTest() {
	suite.mockReactionRepo = new(MockReactionRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReactionService(suite.mockReactionRepo, suite.mockJournalRepo)
}

func (suite *ReactionServiceTestSuite) TestToggle_LikesThenReportsState() {
	ctx := context.Background()
	userID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), Visibility: domain.VisibilityPublic}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockReactionRepo.On("ToggleLike", ctx, userID, journal.JournalID).Return(true, 7, nil).Once()

	liked, count, err := suite.service.Toggle(ctx, userID, journal.JournalID)

	suite.Require().NoError(err)
	suite.True(liked)
	suite.Equal(7, count)
	suite.mockReactionRepo.AssertExpectations(suite.T())
}

func (suite *ReactionServiceTestSuite) TestToggle_MissingJournal() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(nil, apperrors.ErrNotFound).Once()

	liked, count, err := suite.service.Toggle(ctx, uuid.NewString(), journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.False(liked)
	suite.Zero(count)
	suite.mockReactionRepo.AssertNotCalled(suite.T(), "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReactionServiceTestSuite) TestLike_DuplicateIsConflictForCaller() {
	ctx := context.Background()
	userID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), Visibility: domain.VisibilityPublic}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockReactionRepo.On("AddLike", ctx, userID, journal.JournalID).Return(0, apperrors.ErrDuplicate).Once()

	_, err := suite.service.Like(ctx, userID, journal.JournalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ReactionServiceTestSuite) TestUnlike_MissingLike() {
	ctx := context.Background()
	userID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), Visibility: domain.VisibilityPublic}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockReactionRepo.On("RemoveLike", ctx, userID, journal.JournalID).Return(0, apperrors.ErrNotFound).Once()

	_, err := suite.service.Unlike(ctx, userID, journal.JournalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReactionServiceTestSuite) TestListLiked() {
	ctx := context.Background()
	userID := uuid.NewString()
	ids := []string{"j-1", "j-2"}

	suite.mockReactionRepo.On("ListLikedJournalIDs", ctx, userID).Return(ids, nil).Once()

	result, err := suite.service.ListLiked(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(ids, result)
}

func TestReactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReactionServiceTestSuite))
}
