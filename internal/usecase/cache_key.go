package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type roleSearchCacheKeyInput struct {
	UserID              string  `json:"user_id"`
	Title               string  `json:"title"`
	CompanyName         string  `json:"company_name"`
	Location            string  `json:"location"`
	MinScore            float64 `json:"min_score"`
	MaxScore            float64 `json:"max_score"`
	RequireSkillsListed bool    `json:"require_skills_listed"`
	ShowOnlyMatches     bool    `json:"show_only_matches"`
	SortBy              string  `json:"sort_by"`
	SortDirection       string  `json:"sort_direction"`
	Limit               int     `json:"limit"`
	Offset              int     `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func RolesSearchCacheKey(params RoleListParams) string {
	userID := ""
	if params.UserID != uuid.Nil {
		userID = params.UserID.String()
	}

	in := roleSearchCacheKeyInput{
		UserID:              userID,
		Title:               normalizeSearchValue(params.Title),
		CompanyName:         normalizeSearchValue(params.CompanyName),
		Location:            normalizeSearchValue(params.Location),
		MinScore:            params.Filters.MinScore,
		MaxScore:            params.Filters.MaxScore,
		RequireSkillsListed: params.Filters.RequireSkillsListed,
		ShowOnlyMatches:     params.Filters.ShowOnlyMatches,
		SortBy:              string(params.Filters.SortBy),
		SortDirection:       string(params.Filters.SortDirection),
		Limit:               params.Limit,
		Offset:              params.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "roles:search:" + h
}

func RolesSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "roles:search:") {
		return "roles:lock:" + strings.TrimPrefix(searchKey, "roles:search:")
	}
	return "roles:lock:" + searchKey
}
