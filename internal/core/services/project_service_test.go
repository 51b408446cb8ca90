package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/core/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewProjectService(suite.mockRepo)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_DefaultsToActive() {
	ctx := context.Background()
	id := uuid.NewString()
	expected := domain.Project{Name: "Metro Hattı", Description: "2. etap", Status: domain.StatusActive}

	suite.mockRepo.On("SaveProject", ctx, expected).Return(&domain.Project{ID: id, Name: expected.Name, Description: expected.Description, Status: expected.Status}, nil).Once()

	project, err := suite.service.CreateProject(ctx, dto.CreateProjectRequest{Name: "  Metro Hattı ", Description: "2. etap"})

	suite.Require().NoError(err)
	suite.Equal(id, project.ID)
	suite.Equal(domain.StatusActive, project.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_BlankName() {
	project, err := suite.service.CreateProject(context.Background(), dto.CreateProjectRequest{Name: "   "})

	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestGetProjectByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindProjectByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.GetProjectByID(ctx, "missing")

	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProjectServiceTestSuite) TestListProjects_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListProjects", ctx).Return(nil, nil).Once()

	projects, err := suite.service.ListProjects(ctx)

	suite.Require().NoError(err)
	suite.NotNil(projects)
	suite.Empty(projects)
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Project{ID: "p1", Name: "Eski", Description: "kalsın", Status: domain.StatusActive}
	suite.mockRepo.On("FindProjectByID", ctx, "p1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == "Eski" && p.Description == "kalsın" && p.Status == domain.StatusInactive
	})).Return(&domain.Project{ID: "p1", Name: "Eski", Description: "kalsın", Status: domain.StatusInactive}, nil).Once()

	project, err := suite.service.UpdateProject(ctx, "p1", dto.UpdateProjectRequest{Status: ptr(domain.StatusInactive)})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInactive, project.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_BlankName() {
	ctx := context.Background()
	suite.mockRepo.On("FindProjectByID", ctx, "p1").Return(&domain.Project{ID: "p1", Name: "Eski"}, nil).Once()

	_, err := suite.service.UpdateProject(ctx, "p1", dto.UpdateProjectRequest{Name: ptr(" ")})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_Referenced() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteProject", ctx, "p1").Return(apperrors.ErrReferenced).Once()

	err := suite.service.DeleteProject(ctx, "p1")

	suite.ErrorIs(err, apperrors.ErrReferenced)
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

type BankServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBankRepository
	service  portssvc.BankSvcFacade
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBankRepository)
	suite.service = services.NewBankService(suite.mockRepo)
}

func (suite *BankServiceTestSuite) TestCreateBank_NormalizesCode() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBank", ctx, domain.Bank{Name: "Ziraat Bankası", Code: "ZRT", Status: domain.StatusActive}).
		Return(&domain.Bank{ID: "b1", Name: "Ziraat Bankası", Code: "ZRT", Status: domain.StatusActive}, nil).Once()

	bank, err := suite.service.CreateBank(ctx, dto.CreateBankRequest{Name: "Ziraat Bankası", Code: " zrt "})

	suite.Require().NoError(err)
	suite.Equal("ZRT", bank.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestCreateBank_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveBank", ctx, mock.AnythingOfType("domain.Bank")).Return(nil, assert.AnError).Once()

	bank, err := suite.service.CreateBank(ctx, dto.CreateBankRequest{Name: "Garanti"})

	suite.Nil(bank)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BankServiceTestSuite) TestUpdateBank_ClearsContactInfo() {
	ctx := context.Background()
	suite.mockRepo.On("FindBankByID", ctx, "b1").Return(&domain.Bank{ID: "b1", Name: "Vakıf", ContactInfo: "0212"}, nil).Once()
	suite.mockRepo.On("UpdateBank", ctx, domain.Bank{ID: "b1", Name: "Vakıf"}).Return(&domain.Bank{ID: "b1", Name: "Vakıf"}, nil).Once()

	bank, err := suite.service.UpdateBank(ctx, "b1", dto.UpdateBankRequest{ContactInfo: ptr("")})

	suite.Require().NoError(err)
	suite.Empty(bank.ContactInfo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestDeleteBank_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteBank", ctx, "nope").Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteBank(ctx, "nope"), apperrors.ErrNotFound)
}

func TestBankService(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
