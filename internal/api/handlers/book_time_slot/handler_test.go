package book_time_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/api/middleware"
	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
	bookTimeSlot "github.com/m04kA/SMC-RealtyService/internal/usecase/book_time_slot"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookTimeSlot.Request) (*bookTimeSlot.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookTimeSlot.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/time-slots/{slotId}/book", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/time-slots/s1/book", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "client-1"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Booked(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})

	slot := &domain.TimeSlot{
		ID:               "s1",
		PropertyID:       "prop-1",
		AgentID:          "agent-1",
		Date:             types.MustDate("2024-04-10"),
		StartTime:        types.MustTimeString("10:00"),
		EndTime:          types.MustTimeString("11:00"),
		IsBooked:         true,
		MaxAttendees:     1,
		CurrentAttendees: 1,
	}
	uc.On("Execute", mock.Anything, &bookTimeSlot.Request{SlotID: "s1", UserID: "client-1"}).
		Return(&bookTimeSlot.Response{Slot: slot}, nil)

	rec := serve(h)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.TimeSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.IsBooked)
	assert.Equal(t, 0, body.RemainingSpots)
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{name: "not found", useCaseErr: bookTimeSlot.ErrTimeSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "full", useCaseErr: fmt.Errorf("%w: 1/1", bookTimeSlot.ErrSlotNotAvailable), wantStatus: http.StatusConflict},
		{name: "started", useCaseErr: bookTimeSlot.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "internal", useCaseErr: bookTimeSlot.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.useCaseErr)
			h := NewHandler(uc, nopLogger{})

			assert.Equal(t, tt.wantStatus, serve(h).Code)
		})
	}
}
