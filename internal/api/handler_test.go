package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/dto"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/service"
)

type mockYieldService struct {
	rangeResp *dto.TreasuryRangeResponse
	dayResp   *dto.TreasuryDayResponse
	err       error

	gotYears  []string
	gotTarget time.Time
}

func (m *mockYieldService) RangeQuery(_ context.Context, years []string, _, _ *time.Time) (*dto.TreasuryRangeResponse, error) {
	m.gotYears = years
	return m.rangeResp, m.err
}

func (m *mockYieldService) EffectiveDate(_ context.Context, target time.Time) (*dto.TreasuryDayResponse, error) {
	m.gotTarget = target
	return m.dayResp, m.err
}

var _ service.YieldService = (*mockYieldService)(nil)

func setupRouterWithMock(s service.YieldService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.GET("/api/yields/treasury", h.GetTreasuryYields)
	return r
}

func TestGetTreasuryYields_TableDriven(t *testing.T) {
	okDay := &dto.TreasuryDayResponse{Date: "2025-09-26", Yields: map[string]int{"10 Yr": 418}}
	okRange := &dto.TreasuryRangeResponse{
		Source: "treasury.gov",
		Years:  []string{"2024"},
		Data:   []dto.TreasuryDay{{Date: "01/02/2024", Yields: map[string]int{"10 Yr": 395}}},
		Count:  1,
	}

	cases := []struct {
		name   string
		svc    *mockYieldService
		query  string
		status int
		assert func(t *testing.T, svc *mockYieldService, body []byte)
	}{
		{
			name:   "no params",
			svc:    &mockYieldService{},
			query:  "/api/yields/treasury",
			status: http.StatusBadRequest,
		},
		{
			name:   "bad date format",
			svc:    &mockYieldService{},
			query:  "/api/yields/treasury?date=09/26/2025",
			status: http.StatusBadRequest,
		},
		{
			name:   "bad start_date format",
			svc:    &mockYieldService{},
			query:  "/api/yields/treasury?year=2024&start_date=Jan-1",
			status: http.StatusBadRequest,
		},
		{
			name:   "bad end_date format",
			svc:    &mockYieldService{},
			query:  "/api/yields/treasury?year=2024&end_date=2024/06/30",
			status: http.StatusBadRequest,
		},
		{
			name:   "single date success",
			svc:    &mockYieldService{dayResp: okDay},
			query:  "/api/yields/treasury?date=2025-09-27",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockYieldService, body []byte) {
				var out dto.TreasuryDayResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Date != "2025-09-26" || out.Yields["10 Yr"] != 418 {
					t.Fatalf("unexpected body: %+v", out)
				}
				// The handler passes the raw date through; roll-back is the service's job.
				if !svc.gotTarget.Equal(time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected target passed to service: %v", svc.gotTarget)
				}
			},
		},
		{
			name:   "single date no data",
			svc:    &mockYieldService{err: service.ErrNoData},
			query:  "/api/yields/treasury?date=2025-01-01",
			status: http.StatusNotFound,
		},
		{
			name:   "range single year success",
			svc:    &mockYieldService{rangeResp: okRange},
			query:  "/api/yields/treasury?year=2024",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockYieldService, body []byte) {
				var out dto.TreasuryRangeResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Source != "treasury.gov" || out.Count != 1 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "years csv parsed in order",
			svc:    &mockYieldService{rangeResp: okRange},
			query:  "/api/yields/treasury?years=2023,%202024,,2025",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockYieldService, _ []byte) {
				want := []string{"2023", "2024", "2025"}
				if len(svc.gotYears) != len(want) {
					t.Fatalf("want years %v, got %v", want, svc.gotYears)
				}
				for i := range want {
					if svc.gotYears[i] != want[i] {
						t.Fatalf("want years %v, got %v", want, svc.gotYears)
					}
				}
			},
		},
		{
			name:   "range validation error",
			svc:    &mockYieldService{err: service.NewValidationError("start_date must not be after end_date")},
			query:  "/api/yields/treasury?year=2024&start_date=2024-02-01&end_date=2024-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "range upstream failure",
			svc:    &mockYieldService{err: &service.UpstreamError{Year: "2024", Err: context.DeadlineExceeded}},
			query:  "/api/yields/treasury?years=2023,2024",
			status: http.StatusBadRequest,
			assert: func(t *testing.T, _ *mockYieldService, body []byte) {
				var out map[string]interface{}
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				msg, _ := out["error"].(string)
				if msg == "" {
					t.Fatalf("error body missing message: %s", body)
				}
			},
		},
		{
			name:   "range no data",
			svc:    &mockYieldService{err: service.ErrNoData},
			query:  "/api/yields/treasury?year=1989",
			status: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("want status %d, got %d (body %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}
