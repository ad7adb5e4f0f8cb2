package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "maintenance-scheduler-backend/internal/errors"
	"maintenance-scheduler-backend/internal/mocks"
	"maintenance-scheduler-backend/internal/scheduling"
	"maintenance-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite tests the ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockScheduleServiceInterface
	handler     *ScheduleHandler
}

// SetupSuite sets up the test suite
func (suite *ScheduleHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.handler = NewScheduleHandler(suite.mockService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/schedule/:date", suite.handler.GetDailySchedule)
	}
}

// TearDownTest cleans up after each test
func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDailySchedule tests the happy path
func (suite *ScheduleHandlerTestSuite) TestGetDailySchedule() {
	expected := &scheduling.DailySchedule{
		Date:        "2025-06-09",
		Shifts:      []scheduling.ShiftSchedule{},
		Unscheduled: []scheduling.UnscheduledTask{},
		Summary:     scheduling.Summary{},
	}

	suite.mockService.EXPECT().
		GetDailySchedule(gomock.Any(), "2025-06-09", service.ScheduleOptions{}).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-06-09", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response scheduling.DailySchedule
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-06-09", response.Date)
}

// TestGetDailyScheduleForwardsOptions tests query parameter parsing
func (suite *ScheduleHandlerTestSuite) TestGetDailyScheduleForwardsOptions() {
	suite.mockService.EXPECT().
		GetDailySchedule(gomock.Any(), "2025-06-09", gomock.Any()).
		DoAndReturn(func(_ any, _ string, opts service.ScheduleOptions) (*scheduling.DailySchedule, error) {
			suite.Require().NotNil(opts.BreakMinutes)
			suite.Equal(20, *opts.BreakMinutes)
			suite.Require().NotNil(opts.BufferMinutes)
			suite.Equal(15, *opts.BufferMinutes)
			suite.Require().NotNil(opts.GroupByMachine)
			suite.True(*opts.GroupByMachine)
			suite.Require().NotNil(opts.PrioritizeMandatory)
			suite.False(*opts.PrioritizeMandatory)
			return &scheduling.DailySchedule{Date: "2025-06-09"}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/schedule/2025-06-09?break-minutes=20&buffer-minutes=15&group-by-machine=true&prioritize-mandatory=false", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetDailyScheduleBadOptions tests malformed query parameters
func (suite *ScheduleHandlerTestSuite) TestGetDailyScheduleBadOptions() {
	tests := []struct {
		name  string
		query string
	}{
		{"non-integer break", "?break-minutes=abc"},
		{"non-integer buffer", "?buffer-minutes=1.5"},
		{"non-boolean grouping", "?group-by-machine=maybe"},
		{"non-boolean priority", "?prioritize-mandatory=2x"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-06-09"+tt.query, nil)
			w := httptest.NewRecorder()
			suite.router.ServeHTTP(w, req)
			assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
		})
	}
}

// TestGetDailyScheduleInvalidDate tests the service rejecting the date
func (suite *ScheduleHandlerTestSuite) TestGetDailyScheduleInvalidDate() {
	suite.mockService.EXPECT().
		GetDailySchedule(gomock.Any(), "junk", service.ScheduleOptions{}).
		Return(nil, apperrors.ErrInvalidDate)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/junk", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetDailyScheduleDataIntegrity tests inconsistent roster data
func (suite *ScheduleHandlerTestSuite) TestGetDailyScheduleDataIntegrity() {
	suite.mockService.EXPECT().
		GetDailySchedule(gomock.Any(), "2025-06-09", service.ScheduleOptions{}).
		Return(nil, apperrors.NewDataIntegrityError("operator OP-A appears twice in the roster"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/2025-06-09", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

// TestScheduleHandlerTestSuite runs the test suite
func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
