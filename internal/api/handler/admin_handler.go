package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

// AdminHandler serves the admin-gated CRUD surface. Routes are mounted
// behind the Auth and RBAC(admin) middleware; every mutation is audited by
// the service layer before the response is written.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Stats returns the dashboard aggregates.
//
// @Summary      Dashboard stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// --- Users ---

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser patches a user's mutable profile fields.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  okResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateUser(c.Request().Context(), actorID, id, ports.UserPatch{
		Name:   req.Name,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// DeleteUser removes a user. Deletion is refused with 409 when the user is
// referenced by audit history.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "User id"
// @Success      200  {object}  okResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), actorID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// --- Issues ---

func (h *AdminHandler) ListIssues(c echo.Context) error {
	filter := ports.IssueFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("q"),
	}
	if v := c.QueryParam("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid categoryId")
		}
		filter.CategoryID = id
	}

	issues, err := h.service.ListIssues(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issues)
}

func (h *AdminHandler) UpdateIssue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateIssue(c.Request().Context(), actorID, id, ports.IssuePatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *AdminHandler) DeleteIssue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteIssue(c.Request().Context(), actorID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// --- Categories ---

func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a new issue category.
//
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      200   {object}  domain.Category
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	category, err := h.service.CreateCategory(c.Request().Context(), actorID, ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateCategory(c.Request().Context(), actorID, id, ports.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(c.Request().Context(), actorID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// --- Settings ---

func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.service.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts every key in the body and records one
// UPDATE_SETTINGS audit entry for the batch.
//
// @Summary      Update settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Settings keys and values"
// @Success      200   {object}  okResponse
// @Router       /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var values map[string]any
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateSettings(c.Request().Context(), actorID, values); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// --- Audit logs ---

// ListAuditLogs returns the most recent audit entries, newest first, each
// joined with the acting identity's email.
//
// @Summary      Read the audit log
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.AuditLogView
// @Router       /api/admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	entries, err := h.service.ListAuditLogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
