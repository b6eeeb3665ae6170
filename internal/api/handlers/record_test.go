package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"teamflow-backend/internal/api/handlers"
	apperrors "teamflow-backend/internal/errors"
	"teamflow-backend/internal/mocks"
	"teamflow-backend/internal/service"
	"teamflow-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RecordHandlerTestSuite defines the test suite for RecordHandler
type RecordHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRecordServiceInterface
	handler     *handlers.RecordHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RecordHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRecordServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewRecordHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	records := v1.Group("/records")
	{
		records.GET("/:key", suite.handler.GetRecord)
		records.PUT("/:key", suite.handler.PutRecord)
		records.DELETE("/:key", suite.handler.DeleteRecord)
	}
}

// TearDownTest cleans up after each test
func (suite *RecordHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetRecord tests the GetRecord handler
func (suite *RecordHandlerTestSuite) TestGetRecord() {
	expected := &service.RecordResponse{
		Key:         "TF-ABC234-WXYZ",
		Name:        "TeamFlow:TF-ABC234-WXYZ",
		Data:        json.RawMessage(`{"users":[],"schedule":[],"lastUpdated":1700000000000}`),
		LastUpdated: 1700000000000,
	}
	suite.mockService.EXPECT().GetRecord("TF-ABC234-WXYZ").Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/records/TF-ABC234-WXYZ", nil)

	var resp service.RecordResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "TF-ABC234-WXYZ", resp.Key)
	assert.Equal(suite.T(), int64(1700000000000), resp.LastUpdated)
}

// TestGetRecordNotFound tests GetRecord for an unknown key
func (suite *RecordHandlerTestSuite) TestGetRecordNotFound() {
	suite.mockService.EXPECT().GetRecord("TF-MISSNG-KEY9").Return(nil, apperrors.ErrScopeNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/records/TF-MISSNG-KEY9", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "record not found")
}

// TestGetRecordInvalidKey tests GetRecord with a malformed key
func (suite *RecordHandlerTestSuite) TestGetRecordInvalidKey() {
	suite.mockService.EXPECT().GetRecord("junk").Return(nil,
		&apperrors.ValidationError{Field: "key", Message: "must be a TF-XXXXXX-XXXX team key or a personal scope key"})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/records/junk", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "key")
}

// TestPutRecord tests the PutRecord handler
func (suite *RecordHandlerTestSuite) TestPutRecord() {
	body := map[string]interface{}{
		"name":        "TeamFlow:TF-ABC234-WXYZ",
		"data":        map[string]interface{}{"users": []interface{}{}},
		"lastUpdated": 1700000000000,
	}
	suite.mockService.EXPECT().
		PutRecord("TF-ABC234-WXYZ", gomock.Any()).
		DoAndReturn(func(key string, req *service.PutRecordRequest) (*service.RecordResponse, error) {
			assert.Equal(suite.T(), int64(1700000000000), req.LastUpdated)
			return &service.RecordResponse{
				Key:         key,
				Name:        req.Name,
				Data:        req.Data,
				LastUpdated: req.LastUpdated,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/records/TF-ABC234-WXYZ", body)

	var resp service.RecordResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "TF-ABC234-WXYZ", resp.Key)
}

// TestPutRecordInvalidBody tests PutRecord with a non-JSON body
func (suite *RecordHandlerTestSuite) TestPutRecordInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/records/TF-ABC234-WXYZ",
		nil, map[string]string{"Content-Type": "application/json"})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeleteRecord tests the DeleteRecord handler
func (suite *RecordHandlerTestSuite) TestDeleteRecord() {
	suite.mockService.EXPECT().DeleteRecord("TF-ABC234-WXYZ").Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/records/TF-ABC234-WXYZ", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteRecordNotFound tests DeleteRecord for an unknown key
func (suite *RecordHandlerTestSuite) TestDeleteRecordNotFound() {
	suite.mockService.EXPECT().DeleteRecord("TF-MISSNG-KEY9").Return(apperrors.ErrScopeNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/records/TF-MISSNG-KEY9", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "record not found")
}

// TestRecordHandlerTestSuite runs the test suite
func TestRecordHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecordHandlerTestSuite))
}
