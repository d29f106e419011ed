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

type CircleServiceTestSuite struct {
	suite.Suite
	mockCircleRepo  *MockCircleRepository
	mockRequestRepo *MockFriendRequestRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.CircleSvcFacade
}

func (suite *CircleServiceTestSuite) SetupTest() {
	suite.mockCircleRepo = new(MockCircleRepository)
	suite.mockRequestRepo = new(MockFriendRequestRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewCircleService(suite.mockCircleRepo, suite.mockRequestRepo, suite.mockUserRepo)
}

func (suite *CircleServiceTestSuite) TestAddMember_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	member := &domain.User{UserID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockCircleRepo.On("AddMember", ctx, ownerID, member.UserID).Return(true, nil).Once()

	err := suite.service.AddMember(ctx, ownerID, member.UserID)

	suite.Require().NoError(err)
	suite.mockCircleRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestAddMember_ReAddIsNoOp() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	member := &domain.User{UserID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByID", ctx, member.UserID).Return(member, nil).Once()
	suite.mockCircleRepo.On("AddMember", ctx, ownerID, member.UserID).Return(false, nil).Once()

	err := suite.service.AddMember(ctx, ownerID, member.UserID)

	suite.Require().NoError(err)
}

func (suite *CircleServiceTestSuite) TestAddMember_Self() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.AddMember(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCircleRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CircleServiceTestSuite) TestRemoveMember_ClearsAcceptedRecord() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	memberID := uuid.NewString()

	suite.mockCircleRepo.On("RemoveMember", ctx, ownerID, memberID).Return(true, nil).Once()
	suite.mockRequestRepo.On("DeleteAcceptedBetween", ctx, ownerID, memberID).Return(nil).Once()
	suite.mockCircleRepo.On("CountMembers", ctx, ownerID).Return(4, nil).Once()

	count, err := suite.service.RemoveMember(ctx, ownerID, memberID)

	suite.Require().NoError(err)
	suite.Equal(4, count)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *CircleServiceTestSuite) TestRemoveMember_NotAMember() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	memberID := uuid.NewString()

	suite.mockCircleRepo.On("RemoveMember", ctx, ownerID, memberID).Return(false, nil).Once()

	count, err := suite.service.RemoveMember(ctx, ownerID, memberID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Zero(count)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "DeleteAcceptedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestCircleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CircleServiceTestSuite))
}
