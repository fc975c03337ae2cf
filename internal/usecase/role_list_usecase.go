package usecase

import (
	"context"
	"log"
	"time"

	"techrec/internal/domain/matching"
	"techrec/internal/domain/role"
	"techrec/internal/repository"

	"github.com/google/uuid"
)

type RoleListParams struct {
	// UserID selects whose skill profile scores the listing; uuid.Nil lists
	// without match data.
	UserID uuid.UUID

	Title       string
	CompanyName string
	Location    string

	Filters matching.FilterOptions

	Limit  int
	Offset int
}

type RoleListItem struct {
	RoleID      uuid.UUID
	Title       string
	CompanyName string
	Location    string
	Description string
	Skills      []string
	PostedAt    *time.Time

	HasSkillsListed bool
	MatchScore      *float64
}

type RoleListUsecase interface {
	ListRoles(ctx context.Context, params RoleListParams) ([]RoleListItem, error)
}

type RoleList struct {
	roles      repository.RoleRepository
	userSkills repository.UserSkillRepository
	cfg        matching.Config
	cache      MatchCache
	logger     *log.Logger
}

func NewRoleListUsecase(roles repository.RoleRepository, userSkills repository.UserSkillRepository, cfg matching.Config, cache MatchCache, logger *log.Logger) *RoleList {
	return &RoleList{roles: roles, userSkills: userSkills, cfg: cfg, cache: cache, logger: logger}
}

func (u *RoleList) ListRoles(ctx context.Context, params RoleListParams) ([]RoleListItem, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 50 {
		return nil, ErrInvalidInput
	}
	offset := params.Offset
	if offset < 0 {
		return nil, ErrInvalidInput
	}
	if params.Filters.MaxScore == 0 {
		// Zero value means "no ceiling", not an empty range.
		params.Filters.MaxScore = 100
	}
	if params.Filters.MinScore < 0 || params.Filters.MaxScore > 100 || params.Filters.MinScore > params.Filters.MaxScore {
		return nil, ErrInvalidInput
	}

	params.Limit = limit
	params.Offset = offset

	cacheKey := RolesSearchCacheKey(params)
	lockKey := RolesSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached []RoleListItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Roles] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another request is filling this page; give it a beat.
			time.Sleep(300 * time.Millisecond)
			var cached []RoleListItem
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	rows, err := u.roles.ListRoles(ctx, repository.RoleListFilter{
		Title:       params.Title,
		CompanyName: params.CompanyName,
		Location:    params.Location,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, ErrInternal
	}

	scores := u.scoreRoles(ctx, params.UserID, rows)

	listings := make([]matching.RoleListing, 0, len(rows))
	for i, r := range rows {
		listings = append(listings, matching.RoleListing{
			OriginalIndex: i,
			ID:            r.ID,
			Title:         r.Title,
			CompanyName:   r.CompanyName,
			PostedAt:      r.PostedAt,
			CreatedAt:     r.CreatedAt,
		})
	}

	filtered := matching.ApplyMatchFilters(listings, scores, params.Filters)

	out := make([]RoleListItem, 0, len(filtered))
	for _, l := range filtered {
		idx := l.OriginalIndex
		if idx < 0 || idx >= len(rows) {
			continue
		}
		out = append(out, toRoleListItem(rows[idx], scores))
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if u.logger != nil {
			u.logger.Printf("[Roles] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

// scoreRoles computes match scores for the page when a profile is available.
// A missing or empty profile degrades to an unscored listing, never an error.
func (u *RoleList) scoreRoles(ctx context.Context, userID uuid.UUID, rows []role.Role) map[uuid.UUID]matching.RoleMatchScore {
	if userID == uuid.Nil || u.userSkills == nil {
		return nil
	}

	skillRows, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil || len(skillRows) == 0 {
		return nil
	}
	profile := SkillProfileFromRows(userID, skillRows)

	scores := make(map[uuid.UUID]matching.RoleMatchScore, len(rows))
	for _, r := range rows {
		score, _ := matching.ScoreRole(u.cfg, r.ID, r.SkillSources, profile.Skills)
		scores[r.ID] = score
	}
	return scores
}

func toRoleListItem(r role.Role, scores map[uuid.UUID]matching.RoleMatchScore) RoleListItem {
	item := RoleListItem{
		RoleID:      r.ID,
		Title:       r.Title,
		CompanyName: r.CompanyName,
		Location:    r.Location,
		Description: r.Description,
		PostedAt:    r.PostedAt,
		Skills:      []string{},
	}

	if src, ok := matching.ResolveSkillSource(r.SkillSources); ok {
		item.Skills = src.Skills
		item.HasSkillsListed = true
	}

	if s, ok := scores[r.ID]; ok && s.HasSkillsListed {
		v := s.OverallScore
		item.MatchScore = &v
	}
	return item
}
