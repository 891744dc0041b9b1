package generate_slots

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	generateSlots "github.com/massage-bot/schedule-service/internal/usecase/generate_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *generateSlots.Response
}

func (u *fakeUseCase) Execute(_ context.Context, _ *generateSlots.Request) (*generateSlots.Response, error) {
	return u.resp, nil
}

func doRequest(t *testing.T, body map[string]interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	handler := NewHandler(&fakeUseCase{resp: &generateSlots.Response{Created: 1}}, nopLogger{})

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/slots/bulk", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandle_BadDateReportedAsDateRange(t *testing.T) {
	rec, body := doRequest(t, map[string]interface{}{
		"start_date":  "2024-13-99",
		"end_date":    "2024-12-07",
		"weekdays":    []int{1},
		"time_ranges": []string{"10:00-11:00"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidDateRange, body["error"])
}

func TestHandle_BadTimeRangeReportedAsTimeRange(t *testing.T) {
	rec, body := doRequest(t, map[string]interface{}{
		"start_date":  "2024-12-01",
		"end_date":    "2024-12-07",
		"weekdays":    []int{1},
		"time_ranges": []string{"10:00"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidTimeRange, body["error"])
}

func TestHandle_ValidRequestPassesThrough(t *testing.T) {
	rec, body := doRequest(t, map[string]interface{}{
		"start_date":  "2024-12-01",
		"end_date":    "2024-12-07",
		"weekdays":    []int{1},
		"time_ranges": []string{"10:00-11:00"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}
