package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/core/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByAuthorAndDate(ctx context.Context, authorID, date string) (*domain.Journal, error) {
	args := m.Called(ctx, authorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalsByAuthor(ctx context.Context, authorID string, visibilities []domain.Visibility) ([]domain.Journal, error) {
	args := m.Called(ctx, authorID, visibilities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalsByAuthorInRange(ctx context.Context, authorID, from, to string) ([]domain.Journal, error) {
	args := m.Called(ctx, authorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

func (m *MockJournalRepository) AppendImage(ctx context.Context, journalID string, imageURL string) error {
	args := m.Called(ctx, journalID, imageURL)
	return args.Error(0)
}

func (m *MockJournalRepository) FindPublicJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) FindCircleJournals(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, authorIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) IncrementReads(ctx context.Context, journalIDs []string) error {
	args := m.Called(ctx, journalIDs)
	return args.Error(0)
}

func (m *MockJournalRepository) FindAuthorsByIDs(ctx context.Context, userIDs []string) (map[string]domain.FeedAuthor, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.FeedAuthor), args.Error(1)
}

func (m *MockJournalRepository) SumCountersByAuthor(ctx context.Context, authorID string) (int, int, int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

func (m *MockJournalRepository) CountDistinctCreationDays(ctx context.Context, authorID string, since time.Time) (int, error) {
	args := m.Called(ctx, authorID, since)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockCircleRepo  *MockCircleRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockCircleRepo = new(MockCircleRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockCircleRepo)
}

// --- CreateJournal Tests ---

func (suite *JournalServiceTestSuite) TestCreateJournal_DefaultsToPrivate() {
	ctx := context.Background()
	authorID := uuid.NewString()
	req := dto.CreateJournalRequest{Title: "A quiet day", Content: "Nothing happened.", JournalDate: "2025-06-01"}

	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.AuthorID == authorID && j.Visibility == domain.VisibilityPrivate && j.JournalDate == "2025-06-01"
	})).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, authorID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.VisibilityPrivate, journal.Visibility)
	suite.NotEmpty(journal.JournalID)
	suite.NotNil(journal.Images)
	suite.Empty(journal.Images)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InvalidVisibility() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{Title: "t", Content: "c", JournalDate: "2025-06-01", Visibility: "friends-only"}

	journal, err := suite.service.CreateJournal(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SecondEntrySameDate() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{Title: "t", Content: "c", JournalDate: "2025-06-01"}

	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(apperrors.ErrDuplicate).Once()

	journal, err := suite.service.CreateJournal(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- GetJournal Visibility Tests ---

func (suite *JournalServiceTestSuite) TestGetJournal_PublicVisibleToAnyone() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityPublic}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	result, err := suite.service.GetJournal(ctx, uuid.NewString(), journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, result.JournalID)
}

func (suite *JournalServiceTestSuite) TestGetJournal_PrivateHiddenFromOthers() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityPrivate}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	result, err := suite.service.GetJournal(ctx, uuid.NewString(), journal.JournalID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalServiceTestSuite) TestGetJournal_PrivateVisibleToAuthor() {
	ctx := context.Background()
	authorID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: authorID, Visibility: domain.VisibilityPrivate}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	result, err := suite.service.GetJournal(ctx, authorID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, result.JournalID)
	// The author's own lookup never consults circle membership.
	suite.mockCircleRepo.AssertNotCalled(suite.T(), "IsMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestGetJournal_CircleVisibleToMember() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityCloseCircle}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockCircleRepo.On("IsMember", ctx, journal.AuthorID, viewerID).Return(true, nil).Once()

	result, err := suite.service.GetJournal(ctx, viewerID, journal.JournalID)

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, result.JournalID)
}

func (suite *JournalServiceTestSuite) TestGetJournal_CircleHiddenFromNonMember() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityCloseCircle}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockCircleRepo.On("IsMember", ctx, journal.AuthorID, viewerID).Return(false, nil).Once()

	result, err := suite.service.GetJournal(ctx, viewerID, journal.JournalID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UpdateJournal Tests ---

func (suite *JournalServiceTestSuite) TestUpdateJournal_NonAuthorForbidden() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: uuid.NewString(), Visibility: domain.VisibilityPublic}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	result, err := suite.service.UpdateJournal(ctx, uuid.NewString(), journal.JournalID, dto.UpdateJournalRequest{Title: "x", Content: "y"})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_OmittedVisibilityKeepsStored() {
	ctx := context.Background()
	authorID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: authorID, Visibility: domain.VisibilityCloseCircle, Images: []string{"a.jpg"}}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Visibility == domain.VisibilityCloseCircle && len(j.Images) == 1 && j.Title == "new title"
	})).Return(nil).Once()

	result, err := suite.service.UpdateJournal(ctx, authorID, journal.JournalID, dto.UpdateJournalRequest{Title: "new title", Content: "new content"})

	suite.Require().NoError(err)
	suite.Equal(domain.VisibilityCloseCircle, result.Visibility)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_RemoveImagesClearsList() {
	ctx := context.Background()
	authorID := uuid.NewString()
	journal := &domain.Journal{JournalID: uuid.NewString(), AuthorID: authorID, Visibility: domain.VisibilityPrivate, Images: []string{"a.jpg", "b.jpg"}}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("UpdateJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return len(j.Images) == 0
	})).Return(nil).Once()

	result, err := suite.service.UpdateJournal(ctx, authorID, journal.JournalID, dto.UpdateJournalRequest{Title: "t", Content: "c", RemoveImages: true})

	suite.Require().NoError(err)
	suite.Empty(result.Images)
}

// --- ListByAuthor Tests ---

func (suite *JournalServiceTestSuite) TestListByAuthor_SelfSeesAllTiers() {
	ctx := context.Background()
	authorID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalsByAuthor", ctx, authorID, []domain.Visibility(nil)).Return([]domain.Journal{}, nil).Once()

	_, err := suite.service.ListByAuthor(ctx, authorID, authorID)

	suite.Require().NoError(err)
	suite.mockCircleRepo.AssertNotCalled(suite.T(), "IsMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListByAuthor_CircleMemberSeesTwoTiers() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockCircleRepo.On("IsMember", ctx, targetID, viewerID).Return(true, nil).Once()
	suite.mockJournalRepo.On("FindJournalsByAuthor", ctx, targetID, []domain.Visibility{domain.VisibilityPublic, domain.VisibilityCloseCircle}).Return([]domain.Journal{}, nil).Once()

	_, err := suite.service.ListByAuthor(ctx, viewerID, targetID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListByAuthor_StrangerSeesPublicOnly() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockCircleRepo.On("IsMember", ctx, targetID, viewerID).Return(false, nil).Once()
	suite.mockJournalRepo.On("FindJournalsByAuthor", ctx, targetID, []domain.Visibility{domain.VisibilityPublic}).Return([]domain.Journal{}, nil).Once()

	_, err := suite.service.ListByAuthor(ctx, viewerID, targetID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- ListMonth Tests ---

func (suite *JournalServiceTestSuite) TestListMonth_UsesHalfOpenRange() {
	ctx := context.Background()
	authorID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalsByAuthorInRange", ctx, authorID, "2025-12-01", "2026-01-01").Return([]domain.Journal{}, nil).Once()

	_, err := suite.service.ListMonth(ctx, authorID, 2025, 12)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListMonth_InvalidMonth() {
	ctx := context.Background()

	journals, err := suite.service.ListMonth(ctx, uuid.NewString(), 2025, 13)

	suite.Require().Error(err)
	suite.Nil(journals)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
