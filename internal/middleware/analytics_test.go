package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	distinctID string
	name       string
	props      map[string]any
}

type stubSink struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (s *stubSink) IsInitialized() bool { return true }

func (s *stubSink) Enqueue(distinctID string, event string, properties map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, capturedEvent{distinctID: distinctID, name: event, props: properties})
}

const analyticsSecret = "analytics-test-secret"

func analyticsRouter(t *testing.T, sink middleware.EventSink) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(analyticsSecret, ""), middleware.AnalyticsMiddleware(sink))
	v1.POST("/businesses/:business_id/reports", func(c *gin.Context) {
		middleware.SetTrackedReport(c, middleware.TrackedReport{
			ReportType:       "Sale Report",
			AdditionalFilter: "Monthly",
			DateFilter:       "this_month",
			RowCount:         3,
		})
		if c.Query("reject") != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad filters"})
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	})
	v1.GET("/businesses/:business_id/widgets", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.ReportClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(analyticsSecret))
	require.NoError(t, err)
	return signed
}

func serve(r *gin.Engine, method, path, token string) int {
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAnalytics_ReportRequestCarriesBusinessAndReport(t *testing.T) {
	sink := &stubSink{}
	r := analyticsRouter(t, sink)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/businesses/biz-9/reports", signedToken(t, "user-1")))

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, "user-1", event.distinctID)
	assert.Equal(t, "report_requested", event.name)
	assert.Equal(t, "biz-9", event.props["business_id"])
	assert.Equal(t, "Sale Report", event.props["report_type"])
	assert.Equal(t, "Monthly", event.props["additional_filter"])
	assert.Equal(t, "this_month", event.props["date_filter"])
	assert.Equal(t, 3, event.props["row_count"])
	assert.Equal(t, true, event.props["succeeded"])
	assert.Equal(t, "/api/v1/businesses/:business_id/reports", event.props["route"])
}

func TestAnalytics_RejectedReportIsTrackedWithoutRows(t *testing.T) {
	sink := &stubSink{}
	r := analyticsRouter(t, sink)

	require.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/businesses/biz-9/reports?reject=1", signedToken(t, "user-1")))

	require.Len(t, sink.events, 1)
	props := sink.events[0].props
	assert.Equal(t, false, props["succeeded"])
	assert.Equal(t, http.StatusBadRequest, props["status_code"])
	assert.Equal(t, "Sale Report", props["report_type"])
	assert.NotContains(t, props, "row_count")
}

func TestAnalytics_EventNameFromRouteTemplate(t *testing.T) {
	sink := &stubSink{}
	r := analyticsRouter(t, sink)

	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/businesses/biz-2/widgets", signedToken(t, "user-2")))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "api_v1_businesses_by_business_id_widgets", sink.events[0].name)
	assert.NotContains(t, sink.events[0].props, "report_type")
}

func TestAnalytics_SkipsAnonymousAndUnmatched(t *testing.T) {
	sink := &stubSink{}
	r := analyticsRouter(t, sink)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/v1/businesses/biz-9/reports", ""))
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/v1/nowhere", signedToken(t, "user-1")))
	assert.Empty(t, sink.events)
}

func TestAnalytics_NilSinkIsIgnored(t *testing.T) {
	r := analyticsRouter(t, nil)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/businesses/biz-9/reports", signedToken(t, "user-1")))
}
