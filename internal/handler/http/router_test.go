package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	checkInResp  attendance.CheckInResponse
	checkInErr   error
	checkOutResp attendance.CheckOutResponse
	checkOutErr  error
	todayResp    attendance.RecordResponse
	todayErr     error
	historyResp  []attendance.RecordResponse
	historyErr   error

	lastCheckIn  *attendance.CheckInRequest
	lastCheckOut *attendance.CheckOutRequest
	lastTodayID  string
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	f.lastCheckIn = &req
	return f.checkInResp, f.checkInErr
}

func (f *fakeAttendanceService) CheckOut(_ context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	f.lastCheckOut = &req
	return f.checkOutResp, f.checkOutErr
}

func (f *fakeAttendanceService) Today(_ context.Context, employeeID string) (attendance.RecordResponse, error) {
	f.lastTodayID = employeeID
	return f.todayResp, f.todayErr
}

func (f *fakeAttendanceService) History(_ context.Context, _ string) ([]attendance.RecordResponse, error) {
	return f.historyResp, f.historyErr
}

type fakeEmployeeService struct {
	resp []employee.EmployeeResponse
	err  error
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context) ([]employee.EmployeeResponse, error) {
	return f.resp, f.err
}

func newTestRouter(att *fakeAttendanceService, emp *fakeEmployeeService, notion config.NotionConfig) http.Handler {
	if att == nil {
		att = &fakeAttendanceService{}
	}
	if emp == nil {
		emp = &fakeEmployeeService{}
	}
	return NewRouter(
		NewEmployeeHandler(emp),
		NewAttendanceHandler(att),
		NewDiagnosticsHandler(notion),
	)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestCheckInEndpoint(t *testing.T) {
	att := &fakeAttendanceService{checkInResp: attendance.CheckInResponse{Time: "09:00:00"}}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/attendance?action=check-in", `{"employeeId":"emp-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "출근이 기록되었습니다.", env.Message)
	assert.JSONEq(t, `{"time":"09:00:00"}`, string(env.Data))

	require.NotNil(t, att.lastCheckIn)
	assert.Equal(t, "emp-1", att.lastCheckIn.EmployeeID)
}

func TestCheckOutEndpoint(t *testing.T) {
	att := &fakeAttendanceService{checkOutResp: attendance.CheckOutResponse{Time: "18:00:00", WorkingHours: 9.0}}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/attendance?action=check-out", `{"employeeId":"emp-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "퇴근이 기록되었습니다.", env.Message)
	assert.JSONEq(t, `{"time":"18:00:00","workingHours":9}`, string(env.Data))
}

func TestUnknownActionRejected(t *testing.T) {
	att := &fakeAttendanceService{}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/attendance?action=lunch", `{"employeeId":"emp-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	assert.Equal(t, "유효하지 않은 액션입니다.", env.Error.Message)
	assert.Nil(t, att.lastCheckIn)
	assert.Nil(t, att.lastCheckOut)
}

func TestMalformedBodyRejected(t *testing.T) {
	router := newTestRouter(nil, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodPost, "/api/attendance?action=check-in", `{"employeeId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid request format", env.Error.Message)
}

func TestTodayEndpoint(t *testing.T) {
	att := &fakeAttendanceService{todayResp: attendance.RecordResponse{
		ID:          "rec-1",
		Date:        "2026-08-30",
		EmployeeID:  "emp-1",
		CheckInTime: "09:00:00",
		Status:      attendance.StatusWorking,
	}}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/attendance?action=today&employeeId=emp-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", att.lastTodayID)
	assert.JSONEq(t, `{
		"id": "rec-1",
		"date": "2026-08-30",
		"employeeId": "emp-1",
		"checkInTime": "09:00:00",
		"status": "근무중"
	}`, string(env.Data))
}

func TestTodayNoRecordIs404(t *testing.T) {
	att := &fakeAttendanceService{todayErr: attendance.ErrNoRecordToday}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/attendance?action=today&employeeId=emp-1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "오늘의 출퇴근 기록이 없습니다.", env.Error.Message)
}

func TestHistoryEndpoint(t *testing.T) {
	att := &fakeAttendanceService{historyResp: []attendance.RecordResponse{
		{ID: "rec-2", Date: "2026-08-30", EmployeeID: "emp-1", Status: attendance.StatusWorking},
		{ID: "rec-1", Date: "2026-08-29", EmployeeID: "emp-1", Status: attendance.StatusCheckedOut},
	}}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/attendance?employeeId=emp-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var records []attendance.RecordResponse
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2026-08-30", records[0].Date)
}

func TestServiceFailureIs500(t *testing.T) {
	att := &fakeAttendanceService{historyErr: errors.New("store unavailable")}
	router := newTestRouter(att, nil, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/attendance?employeeId=emp-1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", env.Error.Code)
	// The underlying error text must not leak to the client.
	assert.NotContains(t, env.Error.Message, "store unavailable")
}

func TestEmployeesEndpoint(t *testing.T) {
	emp := &fakeEmployeeService{resp: []employee.EmployeeResponse{
		{ID: "emp-1", Name: "김철수", Department: "개발팀", Position: "대리", EmployeeID: "EMP-001"},
	}}
	router := newTestRouter(nil, emp, config.NotionConfig{})

	rec, env := doRequest(t, router, http.MethodGet, "/api/employees", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "emp-1",
		"name": "김철수",
		"department": "개발팀",
		"position": "대리",
		"employeeId": "EMP-001"
	}]`, string(env.Data))
}

func TestDiagnosticsEndpoint(t *testing.T) {
	router := newTestRouter(nil, nil, config.NotionConfig{
		APIKey:              "secret",
		EmployeesDatabaseID: "emp-db",
	})

	rec, env := doRequest(t, router, http.MethodGet, "/api/test", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Message   string          `json:"message"`
		Timestamp string          `json:"timestamp"`
		Env       map[string]bool `json:"env"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "API 테스트 성공!", data.Message)
	assert.NotEmpty(t, data.Timestamp)
	assert.Equal(t, map[string]bool{
		"notionApiKeyExists": true,
		"employeesDbExists":  true,
		"attendanceDbExists": false,
	}, data.Env)
}

func TestHeartbeat(t *testing.T) {
	router := newTestRouter(nil, nil, config.NotionConfig{})

	rec, _ := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil, nil, config.NotionConfig{})

	rec, _ := doRequest(t, router, http.MethodPut, "/api/attendance", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(nil, nil, config.NotionConfig{})

	req := httptest.NewRequest(http.MethodOptions, "/api/attendance", nil)
	req.Header.Set("Origin", "https://checkmate.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
