package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/core/services"
)

// --- Mock ReactionRepository ---
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) ToggleLike(ctx context.Context, userID, journalID string) (bool, int, error) {
	args := m.Called(ctx, userID, journalID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockReactionRepository) AddLike(ctx context.Context, userID, journalID string) (int, error) {
	args := m.Called(ctx, userID, journalID)
	return args.Int(0), args.Error(1)
}

func (m *MockReactionRepository) RemoveLike(ctx context.Context, userID, journalID string) (int, error) {
	args := m.Called(ctx, userID, journalID)
	return args.Int(0), args.Error(1)
}

func (m *MockReactionRepository) ListByJournal(ctx context.Context, journalID string) ([]domain.ReactionDetail, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReactionDetail), args.Error(1)
}

func (m *MockReactionRepository) ListLikedJournalIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReactionRepository) CountByJournalIDs(ctx context.Context, journalIDs []string) (map[string]int, error) {
	args := m.Called(ctx, journalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

var _ portsrepo.ReactionRepositoryFacade = (*MockReactionRepository)(nil)

// --- Test Suite ---
type FeedServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockReactionRepo *MockReactionRepository
	mockCircleRepo   *MockCircleRepository
	service          portssvc.FeedSvcFacade
}

func (suite *FeedServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockReactionRepo = new(MockReactionRepository)
	suite.mockCircleRepo = new(MockCircleRepository)
	suite.service = services.NewFeedService(suite.mockJournalRepo, suite.mockReactionRepo, suite.mockCircleRepo)
}

func (suite *FeedServiceTestSuite) TestPublicFeed_AssemblesEntries() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	authorID := uuid.NewString()

	named := domain.Journal{JournalID: uuid.NewString(), AuthorID: authorID, Visibility: domain.VisibilityPublic, ReadsCount: 4}
	anonymous := domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityPublic, IsAnonymous: true, ReadsCount: 0}
	journals := []domain.Journal{named, anonymous}
	journalIDs := []string{named.JournalID, anonymous.JournalID}

	suite.mockJournalRepo.On("FindPublicJournals", ctx, 10, 0).Return(journals, int64(2), nil).Once()
	suite.mockReactionRepo.On("CountByJournalIDs", ctx, journalIDs).Return(map[string]int{named.JournalID: 3}, nil).Once()
	suite.mockJournalRepo.On("FindAuthorsByIDs", ctx, []string{authorID}).Return(map[string]domain.FeedAuthor{
		authorID: {UserID: authorID, Username: "alice"},
	}, nil).Once()
	suite.mockJournalRepo.On("IncrementReads", ctx, journalIDs).Return(nil).Once()

	resp, err := suite.service.PublicFeed(ctx, viewerID, 1, 10)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Journals, 2)

	// Likes come from the ledger, reads include this impression.
	suite.Equal(3, resp.Journals[0].Likes)
	suite.Equal(5, resp.Journals[0].Reads)
	suite.Require().NotNil(resp.Journals[0].Author)
	suite.Equal("alice", resp.Journals[0].Author.Username)

	// Anonymous entries carry no author block.
	suite.Equal(0, resp.Journals[1].Likes)
	suite.Equal(1, resp.Journals[1].Reads)
	suite.Nil(resp.Journals[1].Author)

	suite.Equal(int64(2), resp.Total)
	suite.Equal(1, resp.CurrentPage)
	suite.False(resp.HasMore)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockReactionRepo.AssertExpectations(suite.T())
}

func (suite *FeedServiceTestSuite) TestPublicFeed_AnonymousEntryOmitsAuthorIdentity() {
	ctx := context.Background()
	authorID := "author-under-wraps"
	anonymous := domain.Journal{JournalID: "j-1", AuthorID: authorID, Visibility: domain.VisibilityPublic, IsAnonymous: true}

	suite.mockJournalRepo.On("FindPublicJournals", ctx, 10, 0).Return([]domain.Journal{anonymous}, int64(1), nil).Once()
	suite.mockReactionRepo.On("CountByJournalIDs", ctx, []string{"j-1"}).Return(map[string]int{}, nil).Once()
	suite.mockJournalRepo.On("FindAuthorsByIDs", ctx, []string{}).Return(map[string]domain.FeedAuthor{}, nil).Once()
	suite.mockJournalRepo.On("IncrementReads", ctx, []string{"j-1"}).Return(nil).Once()

	resp, err := suite.service.PublicFeed(ctx, uuid.NewString(), 1, 10)
	suite.Require().NoError(err)

	// The serialized page is what reaches clients; the author's id must not
	// appear in it in any form.
	payload, err := json.Marshal(resp)
	suite.Require().NoError(err)
	suite.NotContains(string(payload), authorID)
	suite.NotContains(string(payload), "authorID")
	suite.Contains(string(payload), `"author":null`)
}

func (suite *FeedServiceTestSuite) TestPublicFeed_ClampsPagination() {
	ctx := context.Background()

	// page 0 and an oversized limit get normalized before hitting storage.
	suite.mockJournalRepo.On("FindPublicJournals", ctx, 50, 0).Return([]domain.Journal{}, int64(0), nil).Once()
	suite.mockReactionRepo.On("CountByJournalIDs", ctx, []string{}).Return(map[string]int{}, nil).Once()
	suite.mockJournalRepo.On("FindAuthorsByIDs", ctx, []string{}).Return(map[string]domain.FeedAuthor{}, nil).Once()
	suite.mockJournalRepo.On("IncrementReads", ctx, []string{}).Return(nil).Once()

	resp, err := suite.service.PublicFeed(ctx, uuid.NewString(), 0, 500)

	suite.Require().NoError(err)
	suite.Empty(resp.Journals)
	suite.Equal(1, resp.CurrentPage)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *FeedServiceTestSuite) TestCircleFeed_ScopedToCirclesContainingViewer() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	// Authors whose circle contains the viewer, the same direction GetJournal
	// checks, so an entry in the feed never 403s on direct fetch.
	ownerIDs := []string{"friend-1", "friend-2"}
	entry := domain.Journal{JournalID: uuid.NewString(), AuthorID: "friend-1", Visibility: domain.VisibilityCloseCircle, ReadsCount: 1}

	suite.mockCircleRepo.On("ListOwnerIDs", ctx, viewerID).Return(ownerIDs, nil).Once()
	suite.mockJournalRepo.On("FindCircleJournals", ctx, ownerIDs, 10, 0).Return([]domain.Journal{entry}, int64(21), nil).Once()
	suite.mockReactionRepo.On("CountByJournalIDs", ctx, []string{entry.JournalID}).Return(map[string]int{}, nil).Once()
	suite.mockJournalRepo.On("FindAuthorsByIDs", ctx, []string{"friend-1"}).Return(map[string]domain.FeedAuthor{}, nil).Once()
	suite.mockJournalRepo.On("IncrementReads", ctx, []string{entry.JournalID}).Return(nil).Once()

	resp, err := suite.service.CircleFeed(ctx, viewerID, 1, 10)

	suite.Require().NoError(err)
	suite.Len(resp.Journals, 1)
	suite.Equal(int64(21), resp.Total)
	suite.Equal(3, resp.TotalPages)
	suite.True(resp.HasMore)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *FeedServiceTestSuite) TestCircleFeed_EmptyCircle() {
	ctx := context.Background()
	viewerID := uuid.NewString()

	suite.mockCircleRepo.On("ListOwnerIDs", ctx, viewerID).Return([]string{}, nil).Once()
	suite.mockJournalRepo.On("FindCircleJournals", ctx, []string{}, 10, 0).Return([]domain.Journal{}, int64(0), nil).Once()
	suite.mockReactionRepo.On("CountByJournalIDs", ctx, []string{}).Return(map[string]int{}, nil).Once()
	suite.mockJournalRepo.On("FindAuthorsByIDs", ctx, []string{}).Return(map[string]domain.FeedAuthor{}, nil).Once()
	suite.mockJournalRepo.On("IncrementReads", ctx, []string{}).Return(nil).Once()

	resp, err := suite.service.CircleFeed(ctx, viewerID, 1, 10)

	suite.Require().NoError(err)
	suite.Empty(resp.Journals)
	suite.Equal(int64(0), resp.Total)
	suite.False(resp.HasMore)
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}
