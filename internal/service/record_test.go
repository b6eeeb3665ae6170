package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/mocks"
	"teamflow-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RecordServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockScopeRecordRepositoryInterface
	recordService *service.RecordService
	validator     *validator.Validate
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockScopeRecordRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.recordService = service.NewRecordService(suite.mockRepo, suite.validator)
}

func (suite *RecordServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecordServiceTestSuite) TestGetRecord_Success() {
	record := &models.ScopeRecord{
		Key:         "TF-ABC234-WXYZ",
		Name:        "TeamFlow:TF-ABC234-WXYZ",
		Data:        json.RawMessage(`{"users":[],"schedule":[],"lastUpdated":1700000000000}`),
		LastUpdated: 1700000000000,
	}
	suite.mockRepo.EXPECT().GetByKey("TF-ABC234-WXYZ").Return(record, nil)

	resp, err := suite.recordService.GetRecord("TF-ABC234-WXYZ")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TF-ABC234-WXYZ", resp.Key)
	assert.Equal(suite.T(), int64(1700000000000), resp.LastUpdated)
}

func (suite *RecordServiceTestSuite) TestGetRecord_NormalizesKey() {
	record := &models.ScopeRecord{Key: "TF-ABC234-WXYZ", Data: json.RawMessage(`{}`)}
	suite.mockRepo.EXPECT().GetByKey("TF-ABC234-WXYZ").Return(record, nil)

	resp, err := suite.recordService.GetRecord("  tf-abc234-wxyz ")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TF-ABC234-WXYZ", resp.Key)
}

func (suite *RecordServiceTestSuite) TestGetRecord_PersonalScope() {
	record := &models.ScopeRecord{Key: "tf-v12-914636", Data: json.RawMessage(`{}`)}
	suite.mockRepo.EXPECT().GetByKey("tf-v12-914636").Return(record, nil)

	resp, err := suite.recordService.GetRecord("tf-v12-914636")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "tf-v12-914636", resp.Key)
}

func (suite *RecordServiceTestSuite) TestGetRecord_NotFound() {
	suite.mockRepo.EXPECT().GetByKey("TF-ABC234-WXYZ").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.recordService.GetRecord("TF-ABC234-WXYZ")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrScopeNotFound)
}

func (suite *RecordServiceTestSuite) TestGetRecord_InvalidKey() {
	resp, err := suite.recordService.GetRecord("not-a-key")

	assert.Nil(suite.T(), resp)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "key", verr.Field)
}

func (suite *RecordServiceTestSuite) TestPutRecord_Success() {
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(record *models.ScopeRecord) error {
		assert.Equal(suite.T(), "TF-ABC234-WXYZ", record.Key)
		assert.Equal(suite.T(), int64(1700000000000), record.LastUpdated)
		return nil
	})

	resp, err := suite.recordService.PutRecord("tf-abc234-wxyz", &service.PutRecordRequest{
		Name:        "TeamFlow:TF-ABC234-WXYZ",
		Data:        json.RawMessage(`{"users":[]}`),
		LastUpdated: 1700000000000,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TF-ABC234-WXYZ", resp.Key)
}

func (suite *RecordServiceTestSuite) TestPutRecord_DefaultsName() {
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(record *models.ScopeRecord) error {
		assert.Equal(suite.T(), "TeamFlow:TF-ABC234-WXYZ", record.Name)
		assert.Positive(suite.T(), record.LastUpdated)
		return nil
	})

	_, err := suite.recordService.PutRecord("TF-ABC234-WXYZ", &service.PutRecordRequest{
		Data: json.RawMessage(`{"users":[]}`),
	})

	assert.NoError(suite.T(), err)
}

func (suite *RecordServiceTestSuite) TestPutRecord_InvalidJSON() {
	resp, err := suite.recordService.PutRecord("TF-ABC234-WXYZ", &service.PutRecordRequest{
		Data: json.RawMessage(`{"users":`),
	})

	assert.Nil(suite.T(), resp)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "data", verr.Field)
}

func (suite *RecordServiceTestSuite) TestPutRecord_MissingData() {
	resp, err := suite.recordService.PutRecord("TF-ABC234-WXYZ", &service.PutRecordRequest{})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *RecordServiceTestSuite) TestPutRecord_RepoError() {
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection refused"))

	resp, err := suite.recordService.PutRecord("TF-ABC234-WXYZ", &service.PutRecordRequest{
		Data: json.RawMessage(`{}`),
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_Success() {
	suite.mockRepo.EXPECT().Exists("TF-ABC234-WXYZ").Return(true, nil)
	suite.mockRepo.EXPECT().Delete("TF-ABC234-WXYZ").Return(nil)

	err := suite.recordService.DeleteRecord("TF-ABC234-WXYZ")

	assert.NoError(suite.T(), err)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_NotFound() {
	suite.mockRepo.EXPECT().Exists("TF-ABC234-WXYZ").Return(false, nil)

	err := suite.recordService.DeleteRecord("TF-ABC234-WXYZ")

	assert.ErrorIs(suite.T(), err, apperrors.ErrScopeNotFound)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
