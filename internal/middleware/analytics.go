package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives product analytics events.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

const trackedReportKey = contextKey("trackedReport")

// TrackedReport is what a report handler records about the request for analytics.
type TrackedReport struct {
	ReportType       string
	AdditionalFilter string
	DateFilter       string
	RowCount         int
}

// SetTrackedReport attaches report details to the event sent for this request.
func SetTrackedReport(c *gin.Context, report TrackedReport) {
	c.Set(string(trackedReportKey), report)
}

// routeEvents names the events of the reporting routes.
var routeEvents = map[string]string{
	"/api/v1/businesses/:business_id/reports": "report_requested",
	"/api/v1/reports/catalogue":               "report_catalogue_viewed",
}

// eventName maps a route template to an event name, e.g.
// "/api/v1/businesses/:business_id/widgets" -> "api_v1_businesses_by_business_id_widgets".
func eventName(fullPath string) string {
	if name, ok := routeEvents[fullPath]; ok {
		return name
	}
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, "/:", "_by_")
	return strings.ReplaceAll(name, "/", "_")
}

// AnalyticsMiddleware sends one event per authenticated request that matched a
// route. Report requests carry the business, the report type and the outcome.
func AnalyticsMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if sink == nil || !sink.IsInitialized() {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		// unmatched routes have no template
		event := eventName(c.FullPath())
		if event == "" {
			return
		}

		status := c.Writer.Status()
		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": status,
			"succeeded":   status < http.StatusBadRequest,
		}
		if businessID := c.Param("business_id"); businessID != "" {
			props["business_id"] = businessID
		}
		if v, ok := c.Get(string(trackedReportKey)); ok {
			if report, ok := v.(TrackedReport); ok {
				props["report_type"] = report.ReportType
				props["additional_filter"] = report.AdditionalFilter
				props["date_filter"] = report.DateFilter
				if status < http.StatusBadRequest {
					props["row_count"] = report.RowCount
				}
			}
		}

		sink.Enqueue(userID, event, props)
	}
}
