package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

// IssueHandler serves the public, unauthenticated issue endpoints.
type IssueHandler struct {
	service ports.IssueService
}

func NewIssueHandler(service ports.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

type reportIssueRequest struct {
	ReporterUserID *int64 `json:"reporter_user_id"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Landmark       string `json:"landmark"`
	Contact        string `json:"contact"`
	GPSLocation    string `json:"gps_location"`
	CategoryID     *int64 `json:"category_id"`
	Status         string `json:"status" validate:"omitempty,oneof=reported in_progress resolved rejected"`
}

// List returns the most recent issues, newest first.
//
// @Summary      List recent issues
// @Tags         issues
// @Produce      json
// @Success      200  {array}  domain.Issue
// @Router       /api/issues [get]
func (h *IssueHandler) List(c echo.Context) error {
	issues, err := h.service.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issues)
}

// Report files a new issue.
//
// @Summary      Report an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        body  body      reportIssueRequest  true  "Issue details"
// @Success      200   {object}  domain.Issue
// @Failure      400   {object}  errorResponse
// @Router       /api/issues [post]
func (h *IssueHandler) Report(c echo.Context) error {
	var req reportIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.service.Report(c.Request().Context(), ports.ReportIssueInput{
		ReporterUserID: req.ReporterUserID,
		Type:           req.Type,
		Priority:       req.Priority,
		Title:          req.Title,
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Landmark:       req.Landmark,
		Contact:        req.Contact,
		GPSLocation:    req.GPSLocation,
		CategoryID:     req.CategoryID,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}
