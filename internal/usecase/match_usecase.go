package usecase

import (
	"context"
	"errors"

	"techrec/internal/domain/matching"
	"techrec/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, roleID uuid.UUID) (matching.RoleMatchScore, error)
}

type Matching struct {
	roles      RoleResolver
	userSkills repository.UserSkillRepository
	cfg        matching.Config
}

func NewMatchingUsecase(roles RoleResolver, userSkills repository.UserSkillRepository, cfg matching.Config) *Matching {
	return &Matching{roles: roles, userSkills: userSkills, cfg: cfg}
}

func (u *Matching) CalculateMatch(ctx context.Context, userID, roleID uuid.UUID) (matching.RoleMatchScore, error) {
	if userID == uuid.Nil {
		return matching.RoleMatchScore{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return matching.RoleMatchScore{}, ErrRoleNotFound
	}

	profile, err := u.loadProfile(ctx, userID)
	if err != nil {
		return matching.RoleMatchScore{}, err
	}

	rl, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return matching.RoleMatchScore{}, ErrRoleNotFound
		}
		return matching.RoleMatchScore{}, ErrInternal
	}

	score, _ := matching.ScoreRole(u.cfg, roleID, rl.SkillSources, profile.Skills)
	return score, nil
}

func (u *Matching) loadProfile(ctx context.Context, userID uuid.UUID) (matching.UserSkillProfile, error) {
	rows, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return matching.UserSkillProfile{}, ErrInternal
	}
	if len(rows) == 0 {
		return matching.UserSkillProfile{}, ErrInvalidUserProfile
	}
	return SkillProfileFromRows(userID, rows), nil
}

// SkillProfileFromRows snapshots persisted skills into the engine's profile
// shape; normalization happens here so the engine only ever sees skills
// honoring the Normalized invariant.
func SkillProfileFromRows(userID uuid.UUID, rows []repository.UserSkill) matching.UserSkillProfile {
	profile := matching.UserSkillProfile{
		UserID: userID,
		Skills: make([]matching.UserSkill, 0, len(rows)),
	}
	for _, r := range rows {
		if r.SkillName == "" {
			continue
		}
		categoryID := ""
		if r.CategoryID != nil {
			categoryID = r.CategoryID.String()
		}
		profile.Skills = append(profile.Skills, matching.NewUserSkill(r.SkillName, matching.ParseSkillLevel(r.Level), categoryID))
		if r.UpdatedAt.After(profile.LastUpdated) {
			profile.LastUpdated = r.UpdatedAt
		}
	}
	return profile
}
