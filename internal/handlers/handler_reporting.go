package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hisaabi_reports/internal/apperrors"
	portssvc "github.com/SscSPs/hisaabi_reports/internal/core/ports/services"
	"github.com/SscSPs/hisaabi_reports/internal/dto"
	"github.com/SscSPs/hisaabi_reports/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the catalogue and the per business report routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/reports/catalogue", h.getCatalogue)

	businessGroup := rg.Group("/businesses/:business_id", middleware.RequireBusinessAccess("business_id"))
	{
		businessGroup.POST("/reports", h.generateReport)
	}
}

// getCatalogue godoc
// @Summary List report types
// @Description Lists every report type with the filters, groupings and sort orders it accepts
// @Tags reports
// @Produce json
// @Success 200 {array} dto.CatalogueEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/catalogue [get]
func (h *reportingHandler) getCatalogue(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogueResponse(h.reportingService.Catalogue()))
}

// generateReport godoc
// @Summary Generate a report
// @Description Generates one report for a business from the given filters
// @Tags reports
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param report body dto.GenerateReportRequest true "Report filters"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Business outside token scope"
// @Failure 404 {object} map[string]string "Selected entity not found"
// @Failure 409 {object} map[string]string "Business not configured for reporting"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /businesses/{business_id}/reports [post]
func (h *reportingHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid report request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	filters := req.ToDomainFilters()
	tracked := middleware.TrackedReport{
		ReportType:       filters.ReportType.Title(),
		AdditionalFilter: filters.AdditionalFilter.Title(),
		DateFilter:       string(filters.DateFilter),
	}
	middleware.SetTrackedReport(c, tracked)
	logger = logger.With(
		slog.String("business_id", businessID),
		slog.Int("report_type", req.ReportType),
		slog.Int("additional_filter", req.AdditionalFilter),
	)
	logger.Info("Received request to generate report")

	result, err := h.reportingService.GenerateReport(c.Request.Context(), businessID, filters)
	if err != nil {
		status, msg := reportErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to generate report", slog.String("error", err.Error()))
		} else {
			logger.Warn("Report request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	tracked.DateFilter = string(result.Filters.DateFilter)
	tracked.RowCount = len(result.Rows)
	middleware.SetTrackedReport(c, tracked)

	logger.Info("Report generated successfully", slog.Int("row_count", len(result.Rows)))
	c.JSON(http.StatusOK, dto.ToReportResponse(result))
}

// reportErrorStatus maps service errors onto HTTP status codes.
func reportErrorStatus(err error) (int, string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrConfiguration):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError:
		return appErr.Code, appErr.Message
	default:
		return http.StatusInternalServerError, "Failed to generate report"
	}
}
