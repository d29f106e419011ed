package services_test

import (
	"context"
	"strings"
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
	"github.com/inkwellhq/inkwell_backend/internal/platform/config"
	"github.com/inkwellhq/inkwell_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStats(ctx context.Context, userID string, stats domain.UserStats) error {
	args := m.Called(ctx, userID, stats)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SearchUsers(ctx context.Context, viewerID string, query string, limit int) ([]domain.CircleMember, error) {
	args := m.Called(ctx, viewerID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CircleMember), args.Error(1)
}

func (m *MockUserRepository) SuggestUsers(ctx context.Context, viewerID string, excludeIDs []string, limit int) ([]domain.CircleMember, error) {
	args := m.Called(ctx, viewerID, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CircleMember), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CircleRepository ---
type MockCircleRepository struct {
	mock.Mock
}

func (m *MockCircleRepository) AddMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	args := m.Called(ctx, ownerID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCircleRepository) RemoveMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	args := m.Called(ctx, ownerID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCircleRepository) IsMember(ctx context.Context, ownerID, memberID string) (bool, error) {
	args := m.Called(ctx, ownerID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCircleRepository) ListMemberIDs(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCircleRepository) ListOwnerIDs(ctx context.Context, memberID string) ([]string, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCircleRepository) ListMembers(ctx context.Context, ownerID string) ([]domain.CircleMember, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CircleMember), args.Error(1)
}

func (m *MockCircleRepository) CountMembers(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.CircleRepositoryFacade = (*MockCircleRepository)(nil)

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

var _ portssvc.Mailer = (*MockMailer)(nil)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockCircleRepo *MockCircleRepository
	mockMailer     *MockMailer
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCircleRepo = new(MockCircleRepository)
	suite.mockMailer = new(MockMailer)
	cfg := &config.Config{FrontendBaseURL: "http://localhost:3000"}
	suite.service = services.NewUserService(cfg, suite.mockUserRepo, suite.mockCircleRepo, suite.mockMailer)
}

// --- Register Tests ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.Email == req.Email &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Name, user.Name)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Test User",
		Username: "taken",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-password"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserMapsToUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_FederatedAccountHasNoPassword() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Username: "googler", PasswordHash: ""}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "googler").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "googler", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- FindOrCreateFromGoogle Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateFromGoogle_ExistingEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "alice@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateFromGoogle(ctx, &domain.GoogleUserInfo{Email: "alice@example.com", Name: "Alice"})

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateFromGoogle_NewUserGetsUniqueUsername() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{Email: "bob@example.com", Name: "Bob Builder", Picture: "http://img"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	base := utils.UsernameBase(info.Name)
	// First candidate is taken, the suffixed one is free.
	suite.mockUserRepo.On("FindUserByUsername", ctx, base).Return(&domain.User{UserID: "other"}, nil).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, base+"1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == base+"1" && user.Email == info.Email && user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateFromGoogle(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(base+"1", user.Username)
	suite.Equal(info.Picture, user.ProfileImage)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateFromGoogle_MissingEmail() {
	ctx := context.Background()

	user, err := suite.service.FindOrCreateFromGoogle(ctx, &domain.GoogleUserInfo{Name: "No Email"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Password Reset Tests ---

func (suite *UserServiceTestSuite) TestStartPasswordReset_SendsMailWithLink() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Email: "alice@example.com", Name: "Alice"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("SetResetToken", ctx, user.UserID, mock.AnythingOfType("string"), mock.MatchedBy(func(expiry time.Time) bool {
		// Reset tokens live for 10 minutes.
		remaining := time.Until(expiry)
		return remaining > 9*time.Minute && remaining <= 10*time.Minute
	})).Return(nil).Once()
	suite.mockMailer.On("Send", ctx, user.Email, "Reset your password", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "http://localhost:3000/reset-password?token=")
	})).Return(nil).Once()

	err := suite.service.StartPasswordReset(ctx, user.Email)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestStartPasswordReset_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.StartPasswordReset(ctx, "ghost@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCompletePasswordReset_Success() {
	ctx := context.Background()
	rawToken := "raw-reset-token"
	user := &domain.User{UserID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, utils.HashOpaqueToken(rawToken)).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, user.UserID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password-123", hash)
	})).Return(nil).Once()

	err := suite.service.CompletePasswordReset(ctx, rawToken, "new-password-123")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCompletePasswordReset_InvalidToken() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByResetTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CompletePasswordReset(ctx, "bogus", "new-password-123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

// --- SuggestUsers Tests ---

func (suite *UserServiceTestSuite) TestSuggestUsers_ExcludesCircleMembers() {
	ctx := context.Background()
	viewerID := uuid.NewString()
	memberIDs := []string{"friend-1", "friend-2"}
	suggested := []domain.CircleMember{{UserID: "stranger-1"}}

	suite.mockCircleRepo.On("ListMemberIDs", ctx, viewerID).Return(memberIDs, nil).Once()
	suite.mockUserRepo.On("SuggestUsers", ctx, viewerID, memberIDs, 8).Return(suggested, nil).Once()

	users, err := suite.service.SuggestUsers(ctx, viewerID, 8)

	suite.Require().NoError(err)
	suite.Equal(suggested, users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
