package create_time_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.TimeSlotResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, userID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/properties/{propertyId}/time-slots", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/properties/prop-1/time-slots", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	svc := new(mockService)
	h := NewHandler(svc, nopLogger{})

	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreateTimeSlotRequest) bool {
		return req.AgentID == "agent-1" && req.PropertyID == "prop-1" &&
			req.Date == "2024-04-10" && req.StartTime == "10:00" && req.EndTime == "11:00"
	})).Return(&models.TimeSlotResponse{ID: "s1", PropertyID: "prop-1", AgentID: "agent-1", MaxAttendees: 1, RemainingSpots: 1}, nil)

	rec := serve(h, "agent-1", `{"date":"2024-04-10","startTime":"10:00","endTime":"11:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.TimeSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "s1", body.ID)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	validBody := `{"date":"2024-04-10","startTime":"10:00","endTime":"11:00"}`

	tests := []struct {
		name       string
		userID     string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "missing user", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "malformed body", userID: "agent-1", body: `{"date":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", userID: "agent-1", body: `{"agentId":"other"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "conflict",
			userID:     "agent-1",
			body:       validBody,
			serviceErr: fmt.Errorf("%w: overlaps s2", timeslots.ErrTimeSlotConflict),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid time range",
			userID:     "agent-1",
			body:       validBody,
			serviceErr: fmt.Errorf("%w: end before start", timeslots.ErrInvalidTimeRange),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid input",
			userID:     "agent-1",
			body:       validBody,
			serviceErr: fmt.Errorf("%w: bad date", timeslots.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal",
			userID:     "agent-1",
			body:       validBody,
			serviceErr: fmt.Errorf("%w: db", timeslots.ErrInternal),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.serviceErr != nil {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}
			h := NewHandler(svc, nopLogger{})

			rec := serve(h, tt.userID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
