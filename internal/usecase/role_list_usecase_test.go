package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"techrec/internal/domain/matching"
	"techrec/internal/domain/role"
	"techrec/internal/repository"

	"github.com/google/uuid"
)

type mockRoleRepo struct {
	items []role.Role
	err   error
}

func (m mockRoleRepo) FindByID(_ context.Context, roleID uuid.UUID) (role.Role, error) {
	for _, r := range m.items {
		if r.ID == roleID {
			return r, nil
		}
	}
	return role.Role{}, repository.ErrRoleNotFound
}

func (m mockRoleRepo) ListRoles(context.Context, repository.RoleListFilter) ([]role.Role, error) {
	return m.items, m.err
}

type mockUserSkillRepo struct {
	rows []repository.UserSkill
	err  error
}

func (m mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.rows, m.err
}

func TestRoleListUsecase_InvalidLimit(t *testing.T) {
	uc := NewRoleListUsecase(mockRoleRepo{}, mockUserSkillRepo{}, matching.DefaultConfig(), nil, nil)
	_, err := uc.ListRoles(context.Background(), RoleListParams{Limit: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoleListUsecase_ScoredAndSorted(t *testing.T) {
	goRole := role.Role{
		ID:    uuid.New(),
		Title: "Backend Engineer",
		SkillSources: []matching.RoleSkillSource{
			{Source: matching.SourceRoleSkills, Skills: []string{"Go", "PostgreSQL"}},
		},
	}
	noSkillRole := role.Role{ID: uuid.New(), Title: "Mystery Role"}

	uc := NewRoleListUsecase(
		mockRoleRepo{items: []role.Role{noSkillRole, goRole}},
		mockUserSkillRepo{rows: []repository.UserSkill{
			{UserID: uuid.New(), SkillName: "Go", Level: "expert", UpdatedAt: time.Now()},
		}},
		matching.DefaultConfig(),
		nil,
		nil,
	)

	items, err := uc.ListRoles(context.Background(), RoleListParams{
		UserID:  uuid.New(),
		Filters: matching.FilterOptions{SortBy: matching.SortByMatch, SortDirection: matching.SortDesc},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].RoleID != goRole.ID {
		t.Fatalf("scored role must sort before the no-skill role")
	}
	if items[0].MatchScore == nil || *items[0].MatchScore <= 0 {
		t.Fatalf("expected a positive match score on the Go role")
	}
	if items[1].MatchScore != nil {
		t.Fatalf("no-skill role must not carry a comparable score")
	}
	if !items[0].HasSkillsListed || items[1].HasSkillsListed {
		t.Fatalf("HasSkillsListed flags wrong")
	}
}

func TestRoleListUsecase_RequireSkillsListedExcludesNoData(t *testing.T) {
	noSkillRole := role.Role{ID: uuid.New(), Title: "Mystery Role"}
	uc := NewRoleListUsecase(
		mockRoleRepo{items: []role.Role{noSkillRole}},
		mockUserSkillRepo{rows: []repository.UserSkill{{SkillName: "Go", Level: "advanced"}}},
		matching.DefaultConfig(),
		nil,
		nil,
	)

	items, err := uc.ListRoles(context.Background(), RoleListParams{
		UserID:  uuid.New(),
		Filters: matching.FilterOptions{RequireSkillsListed: true},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("requireSkillsListed must drop no-skill roles")
	}

	// The same role stays in a plain 0..100 listing.
	items, err = uc.ListRoles(context.Background(), RoleListParams{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("minScore=0 keeps no-skill roles")
	}
}

func TestRoleListUsecase_AnonymousListingHasNoScores(t *testing.T) {
	r := role.Role{
		ID: uuid.New(),
		SkillSources: []matching.RoleSkillSource{
			{Source: matching.SourceRoleSkills, Skills: []string{"Go"}},
		},
	}
	uc := NewRoleListUsecase(mockRoleRepo{items: []role.Role{r}}, mockUserSkillRepo{}, matching.DefaultConfig(), nil, nil)

	items, err := uc.ListRoles(context.Background(), RoleListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].MatchScore != nil {
		t.Fatalf("anonymous listing must not carry match scores")
	}
	if len(items[0].Skills) != 1 {
		t.Fatalf("listing should surface the resolved skill list")
	}
}

func TestMatchingUsecase_CalculateMatch(t *testing.T) {
	r := role.Role{
		ID: uuid.New(),
		SkillSources: []matching.RoleSkillSource{
			{Source: matching.SourceAIKeySkills, Skills: []string{"JavaScript", "Python"}},
		},
	}
	repo := mockRoleRepo{items: []role.Role{r}}
	skills := mockUserSkillRepo{rows: []repository.UserSkill{
		{SkillName: "JavaScript", Level: "advanced"},
	}}

	uc := NewMatchingUsecase(repo, skills, matching.DefaultConfig())

	score, err := uc.CalculateMatch(context.Background(), uuid.New(), r.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if score.TotalSkills != 2 || score.SkillsMatched != 1 {
		t.Fatalf("expected 1/2 matched, got %d/%d", score.SkillsMatched, score.TotalSkills)
	}
	if score.OverallScore != 60 {
		t.Fatalf("advanced bonus should land the score at 60, got %f", score.OverallScore)
	}

	if _, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("unknown role must map to ErrRoleNotFound")
	}
	if _, err := uc.CalculateMatch(context.Background(), uuid.Nil, r.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("nil user must map to ErrUnauthorized")
	}
}

func TestMatchingUsecase_EmptyProfile(t *testing.T) {
	r := role.Role{ID: uuid.New()}
	uc := NewMatchingUsecase(mockRoleRepo{items: []role.Role{r}}, mockUserSkillRepo{}, matching.DefaultConfig())

	if _, err := uc.CalculateMatch(context.Background(), uuid.New(), r.ID); !errors.Is(err, ErrInvalidUserProfile) {
		t.Fatalf("empty profile must map to ErrInvalidUserProfile")
	}
}
