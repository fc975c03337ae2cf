package dto

import (
	"time"

	"techrec/internal/usecase"

	"github.com/google/uuid"
)

type RoleListItemResponse struct {
	RoleID      uuid.UUID `json:"role_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	PostedDate  string    `json:"posted_date,omitempty"`

	HasSkillsListed bool     `json:"has_skills_listed"`
	MatchScore      *float64 `json:"match_score,omitempty"`
}

type RoleListResponse struct {
	Roles  []RoleListItemResponse `json:"roles"`
	Count  int                    `json:"count"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

func NewRoleListResponse(items []usecase.RoleListItem, limit, offset int) RoleListResponse {
	roles := make([]RoleListItemResponse, 0, len(items))
	for _, it := range items {
		roles = append(roles, newRoleListItemResponse(it))
	}
	return RoleListResponse{Roles: roles, Count: len(roles), Limit: limit, Offset: offset}
}

func newRoleListItemResponse(it usecase.RoleListItem) RoleListItemResponse {
	out := RoleListItemResponse{
		RoleID:          it.RoleID,
		Title:           it.Title,
		CompanyName:     it.CompanyName,
		Location:        it.Location,
		Description:     it.Description,
		Skills:          it.Skills,
		HasSkillsListed: it.HasSkillsListed,
		MatchScore:      it.MatchScore,
	}
	if it.PostedAt != nil {
		out.PostedDate = it.PostedAt.UTC().Format(time.RFC3339)
	}
	return out
}
