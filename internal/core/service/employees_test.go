package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/mocks"
)

func TestEmployeeSync(t *testing.T) {
	suite.Run(t, new(EmployeeSyncSuite))
}

type EmployeeSyncSuite struct {
	suite.Suite
	directory *mocks.DirectoryClient
	analytics *mocks.AnalyticsClient
	sync      *EmployeeSync
}

func (suite *EmployeeSyncSuite) SetupTest() {
	suite.directory = mocks.NewDirectoryClient(suite.T())
	suite.analytics = mocks.NewAnalyticsClient(suite.T())
	suite.sync = NewEmployeeSync(suite.directory, suite.analytics)
}

func (suite *EmployeeSyncSuite) TestSync_FullRefresh() {
	suite.directory.On("ListEmployees", mock.Anything).Return([]domain.DirectoryEmployee{
		{
			ID:             1,
			EmployeeNumber: "E-001",
			FullName:       "Alice Martin",
			Email:          "alice@acme.io",
			Position:       &domain.DirectoryRef{Name: "Engineer"},
			Department:     &domain.DirectoryRef{Name: "R&D"},
			ReportingTo: &domain.DirectoryReporting{
				ID:        7,
				Email:     "boss@acme.io",
				FirstName: "Grace",
				LastName:  "Hopper",
			},
		},
		{
			ID:             2,
			EmployeeNumber: "E-002",
			FullName:       "Bob Lee",
			Email:          "bob@acme.io",
		},
	}, nil)

	suite.analytics.On("TruncateEmployees", mock.Anything).Return(nil)

	var pushed []domain.EmployeeRow
	suite.analytics.On("PushEmployees", mock.Anything, mock.MatchedBy(func(rows []domain.EmployeeRow) bool {
		pushed = rows
		return len(rows) == 2
	})).Return(nil)

	count, err := suite.sync.Sync(context.Background())
	suite.NoError(err)
	suite.Equal(2, count)

	suite.Require().Len(pushed, 2)
	suite.Equal("Engineer", *pushed[0].Position)
	suite.Equal("R&D", *pushed[0].Department)
	suite.Nil(pushed[0].Division)
	suite.Equal(int64(7), *pushed[0].ReportingToID)
	suite.Equal("Grace Hopper", *pushed[0].ReportingToFullName)

	suite.Nil(pushed[1].Position)
	suite.Nil(pushed[1].ReportingToEmail)
}

func (suite *EmployeeSyncSuite) TestSync_EmptyDirectorySkipsTruncate() {
	suite.directory.On("ListEmployees", mock.Anything).Return([]domain.DirectoryEmployee{}, nil)

	count, err := suite.sync.Sync(context.Background())
	suite.NoError(err)
	suite.Equal(0, count)

	suite.analytics.AssertNotCalled(suite.T(), "TruncateEmployees", mock.Anything)
	suite.analytics.AssertNotCalled(suite.T(), "PushEmployees", mock.Anything, mock.Anything)
}

func (suite *EmployeeSyncSuite) TestSync_TruncateFailureAbortsPush() {
	suite.directory.On("ListEmployees", mock.Anything).Return([]domain.DirectoryEmployee{
		{ID: 1, Email: "alice@acme.io"},
	}, nil)
	suite.analytics.On("TruncateEmployees", mock.Anything).Return(errors.New("boom"))

	_, err := suite.sync.Sync(context.Background())
	suite.Error(err)

	suite.analytics.AssertNotCalled(suite.T(), "PushEmployees", mock.Anything, mock.Anything)
}

func (suite *EmployeeSyncSuite) TestSync_DirectoryErrorSurfaces() {
	suite.directory.On("ListEmployees", mock.Anything).Return(nil, errors.New("unreachable"))

	_, err := suite.sync.Sync(context.Background())
	suite.Error(err)
}
