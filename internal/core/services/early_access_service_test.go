package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/inkwellhq/inkwell_backend/internal/apperrors"
	"github.com/inkwellhq/inkwell_backend/internal/core/domain"
	portsrepo "github.com/inkwellhq/inkwell_backend/internal/core/ports/repositories"
	portssvc "github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/core/services"
	"github.com/inkwellhq/inkwell_backend/internal/dto"
)

// --- Mock EarlyAccessRepository ---
type MockEarlyAccessRepository struct {
	mock.Mock
}

func (m *MockEarlyAccessRepository) SaveSignup(ctx context.Context, signup domain.EarlyAccessSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

var _ portsrepo.EarlyAccessRepositoryFacade = (*MockEarlyAccessRepository)(nil)

type EarlyAccessServiceTestSuite struct {
	suite.Suite
	mockSignupRepo *MockEarlyAccessRepository
	service        portssvc.EarlyAccessSvcFacade
}

func (suite *EarlyAccessServiceTestSuite) SetupTest() {
	suite.mockSignupRepo = new(MockEarlyAccessRepository)
	suite.service = services.NewEarlyAccessService(suite.mockSignupRepo)
}

func (suite *EarlyAccessServiceTestSuite) TestRegisterInterest_Success() {
	ctx := context.Background()
	req := dto.EarlyAccessRequest{FullName: "Asha Rao", MobileNumber: "9876543210", BusinessName: "Asha Writes"}

	suite.mockSignupRepo.On("SaveSignup", ctx, mock.MatchedBy(func(s domain.EarlyAccessSignup) bool {
		return s.MobileNumber == req.MobileNumber && s.SignupID != ""
	})).Return(nil).Once()

	signup, err := suite.service.RegisterInterest(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(req.FullName, signup.FullName)
	suite.mockSignupRepo.AssertExpectations(suite.T())
}

func (suite *EarlyAccessServiceTestSuite) TestRegisterInterest_InvalidMobileNumbers() {
	ctx := context.Background()

	for _, number := range []string{"", "12345", "1234567890", "98765432101", "98765abcde"} {
		signup, err := suite.service.RegisterInterest(ctx, dto.EarlyAccessRequest{FullName: "X", MobileNumber: number})
		suite.Require().Error(err, "number %q should be rejected", number)
		suite.Nil(signup)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockSignupRepo.AssertNotCalled(suite.T(), "SaveSignup", mock.Anything, mock.Anything)
}

func (suite *EarlyAccessServiceTestSuite) TestRegisterInterest_DuplicateNumber() {
	ctx := context.Background()
	req := dto.EarlyAccessRequest{FullName: "Asha Rao", MobileNumber: "9876543210"}

	suite.mockSignupRepo.On("SaveSignup", ctx, mock.AnythingOfType("domain.EarlyAccessSignup")).Return(apperrors.ErrDuplicate).Once()

	signup, err := suite.service.RegisterInterest(ctx, req)

	suite.Require().Error(err)
	suite.Nil(signup)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestEarlyAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EarlyAccessServiceTestSuite))
}
