package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/mocks"
	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite tests the ShiftHandler
type ShiftHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockShiftServiceInterface
	handler     *ShiftHandler
}

// SetupSuite sets up the test suite
func (suite *ShiftHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *ShiftHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.handler = NewShiftHandler(suite.mockService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", suite.handler.ListShifts)
			shifts.POST("", suite.handler.CreateShift)
			shifts.GET("/:id", suite.handler.GetShift)
			shifts.PUT("/:id", suite.handler.UpdateShift)
			shifts.DELETE("/:id", suite.handler.DeleteShift)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateShift tests creating a new shift
func (suite *ShiftHandlerTestSuite) TestCreateShift() {
	shiftID := uuid.New()
	request := service.CreateShiftRequest{
		Name:         "morning",
		DisplayName:  "Morning Shift",
		StartMinute:  360,
		EndMinute:    840,
		BreakMinutes: 30,
	}

	expectedResponse := &service.ShiftResponse{
		ID:           shiftID,
		Name:         "morning",
		DisplayName:  "Morning Shift",
		StartTime:    "06:00",
		EndTime:      "14:00",
		StartMinute:  360,
		EndMinute:    840,
		BreakMinutes: 30,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), shiftID, response.ID)
	assert.Equal(suite.T(), "06:00", response.StartTime)
}

// TestCreateShiftInvalidWindow tests window validation surfacing as 400
func (suite *ShiftHandlerTestSuite) TestCreateShiftInvalidWindow() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrShiftWindow)

	body, _ := json.Marshal(service.CreateShiftRequest{Name: "bad", StartMinute: 840, EndMinute: 360})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateShiftDuplicate tests the name conflict
func (suite *ShiftHandlerTestSuite) TestCreateShiftDuplicate() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrShiftExists)

	body, _ := json.Marshal(service.CreateShiftRequest{Name: "morning", EndMinute: 840})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestListShifts tests listing shifts
func (suite *ShiftHandlerTestSuite) TestListShifts() {
	suite.mockService.EXPECT().
		List(gomock.Any()).
		Return([]service.ShiftResponse{{Name: "morning"}, {Name: "evening"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 2)
}

// TestGetShift tests fetching one shift
func (suite *ShiftHandlerTestSuite) TestGetShift() {
	shiftID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(shiftID).
		Return(&service.ShiftResponse{ID: shiftID, Name: "morning"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetShiftNotFound tests an unknown shift
func (suite *ShiftHandlerTestSuite) TestGetShiftNotFound() {
	shiftID := uuid.New()
	suite.mockService.EXPECT().
		GetByID(shiftID).
		Return(nil, apperrors.ErrShiftNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetShiftInvalidID tests a malformed path parameter
func (suite *ShiftHandlerTestSuite) TestGetShiftInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateShift tests updating a shift
func (suite *ShiftHandlerTestSuite) TestUpdateShift() {
	shiftID := uuid.New()
	newEnd := 900

	suite.mockService.EXPECT().
		Update(shiftID, gomock.Any()).
		Return(&service.ShiftResponse{ID: shiftID, EndMinute: newEnd}, nil)

	body, _ := json.Marshal(service.UpdateShiftRequest{EndMinute: &newEnd})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shifts/"+shiftID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteShift tests deleting a shift
func (suite *ShiftHandlerTestSuite) TestDeleteShift() {
	shiftID := uuid.New()
	suite.mockService.EXPECT().
		Delete(shiftID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteShiftStillDefault tests the default-assignment guard
func (suite *ShiftHandlerTestSuite) TestDeleteShiftStillDefault() {
	shiftID := uuid.New()
	suite.mockService.EXPECT().
		Delete(shiftID).
		Return(apperrors.NewDataIntegrityError("shift is the default for 2 operator(s)"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

// TestShiftHandlerTestSuite runs the test suite
func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
