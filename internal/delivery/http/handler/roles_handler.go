package handler

import (
	"strconv"

	"techrec/internal/delivery/http/dto"
	"techrec/internal/delivery/http/middleware"
	"techrec/internal/domain/matching"
	"techrec/internal/pkg/response"
	"techrec/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RolesHandler struct {
	uc usecase.RoleListUsecase
}

func NewRolesHandler(uc usecase.RoleListUsecase) *RolesHandler {
	return &RolesHandler{uc: uc}
}

func (h *RolesHandler) ListRoles(c fiber.Ctx) error {
	minScore, err := queryFloat(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
	}
	maxScore, err := queryFloat(c, "max_score", 100)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid max_score", nil, err)
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	sortBy, ok := parseSortField(c.Query("sort_by"))
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid sort_by", nil, nil)
	}
	sortDir, ok := parseSortDirection(c.Query("sort_direction"))
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid sort_direction", nil, nil)
	}

	params := usecase.RoleListParams{
		UserID:      middleware.UserIDFromCtx(c),
		Title:       c.Query("title"),
		CompanyName: c.Query("company_name"),
		Location:    c.Query("location"),
		Filters: matching.FilterOptions{
			MinScore:            minScore,
			MaxScore:            maxScore,
			RequireSkillsListed: c.Query("require_skills_listed") == "true",
			ShowOnlyMatches:     c.Query("show_only_matches") == "true",
			SortBy:              sortBy,
			SortDirection:       sortDir,
		},
		Limit:  limit,
		Offset: offset,
	}

	items, err := h.uc.ListRoles(c.Context(), params)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.NewRoleListResponse(items, params.Limit, params.Offset))
}

func parseSortField(s string) (matching.SortField, bool) {
	switch matching.SortField(s) {
	case "":
		return matching.SortByMatch, true
	case matching.SortByMatch, matching.SortByDate, matching.SortByTitle, matching.SortByCompany:
		return matching.SortField(s), true
	default:
		return "", false
	}
}

func parseSortDirection(s string) (matching.SortDirection, bool) {
	switch matching.SortDirection(s) {
	case "":
		return matching.SortDesc, true
	case matching.SortAsc, matching.SortDesc:
		return matching.SortDirection(s), true
	default:
		return "", false
	}
}

func queryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func queryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
