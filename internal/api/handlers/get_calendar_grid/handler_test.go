package get_calendar_grid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	getCalendarGrid "github.com/m04kA/SMC-RealtyService/internal/usecase/get_calendar_grid"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCalendarGrid.Request) (*getCalendarGrid.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getCalendarGrid.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/properties/{propertyId}/calendar", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})

	slots := []*domain.TimeSlot{{
		ID:           "s1",
		PropertyID:   "p1",
		Date:         types.MustDate("2024-04-10"),
		StartTime:    types.MustTimeString("10:00"),
		EndTime:      types.MustTimeString("11:00"),
		MaxAttendees: 1,
	}}

	uc.On("Execute", mock.Anything, &getCalendarGrid.Request{
		PropertyID: "p1",
		Date:       types.MustDate("2024-04-15"),
	}).Return(&getCalendarGrid.Response{
		PropertyID: "p1",
		Month:      types.MustDate("2024-04-01"),
		Days:       getCalendarGrid.BuildGrid(types.MustDate("2024-04-15"), slots),
	}, nil)

	rec := serve(h, "/properties/p1/calendar?date=2024-04-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "p1", body.PropertyID)
	assert.Equal(t, "2024-04", body.Month)
	require.Len(t, body.Days, domain.CalendarGridCells)
	assert.Equal(t, "2024-03-31", body.Days[0].Date)
	assert.True(t, body.Days[0].IsPadding)
	assert.NotNil(t, body.Days[0].Slots)
	require.Len(t, body.Days[10].Slots, 1)
	assert.Equal(t, "10:00", body.Days[10].Slots[0].StartTime)
	assert.Equal(t, 10, body.Days[10].Day)
}

func TestHandler_Handle_DefaultsToCurrentMonth(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})
	h.now = func() time.Time { return time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC) }

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getCalendarGrid.Request) bool {
		return req.Date == types.MustDate("2024-06-03")
	})).Return(&getCalendarGrid.Response{
		PropertyID: "p1",
		Month:      types.MustDate("2024-06-01"),
		Days:       getCalendarGrid.BuildGrid(types.MustDate("2024-06-03"), nil),
	}, nil)

	rec := serve(h, "/properties/p1/calendar")

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		h := NewHandler(new(mockUseCase), nopLogger{})

		rec := serve(h, "/properties/p1/calendar?date=April")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("use case failure", func(t *testing.T) {
		uc := new(mockUseCase)
		h := NewHandler(uc, nopLogger{})
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		rec := serve(h, "/properties/p1/calendar?date=2024-04-15")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
