package matching

import (
	"time"

	"github.com/google/uuid"
)

type SkillLevel int

const (
	LevelUnknown SkillLevel = iota
	LevelBeginner
	LevelIntermediate
	LevelAdvanced
	LevelExpert
)

func ParseSkillLevel(s string) SkillLevel {
	switch Normalize(s) {
	case "beginner":
		return LevelBeginner
	case "intermediate":
		return LevelIntermediate
	case "advanced":
		return LevelAdvanced
	case "expert":
		return LevelExpert
	default:
		return LevelUnknown
	}
}

func (l SkillLevel) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	case LevelExpert:
		return "expert"
	default:
		return "unknown"
	}
}

type UserSkill struct {
	Name       string
	Level      SkillLevel
	CategoryID string
	Normalized string
}

// NewUserSkill derives Normalized from Name; skills built any other way
// may break the Normalized == Normalize(Name) invariant.
func NewUserSkill(name string, level SkillLevel, categoryID string) UserSkill {
	return UserSkill{
		Name:       name,
		Level:      level,
		CategoryID: categoryID,
		Normalized: Normalize(name),
	}
}

type UserSkillProfile struct {
	UserID      uuid.UUID
	Skills      []UserSkill
	LastUpdated time.Time
}

func (p UserSkillProfile) IsEmpty() bool {
	return len(p.Skills) == 0
}

type SkillSource int

// Sources ordered by trust: a role contributes the first source in
// SourcePriority that carries a non-empty skill list.
const (
	SourceUnknown SkillSource = iota
	SourceAIKeySkills
	SourceRoleSkills
	SourceLinkedInSpecialties
	SourceDescriptionDerived
)

var SourcePriority = []SkillSource{
	SourceAIKeySkills,
	SourceRoleSkills,
	SourceLinkedInSpecialties,
	SourceDescriptionDerived,
}

func (s SkillSource) String() string {
	switch s {
	case SourceAIKeySkills:
		return "ai_key_skills"
	case SourceRoleSkills:
		return "role_skills"
	case SourceLinkedInSpecialties:
		return "linkedin_specialties"
	case SourceDescriptionDerived:
		return "description_derived"
	default:
		return "unknown"
	}
}

type RoleSkillSource struct {
	Source SkillSource
	Skills []string
}

// ResolveSkillSource picks the role's effective skill list by source
// priority. ok is false when no source has content.
func ResolveSkillSource(sources []RoleSkillSource) (RoleSkillSource, bool) {
	bySource := make(map[SkillSource][]string, len(sources))
	for _, src := range sources {
		if len(src.Skills) == 0 {
			continue
		}
		if _, exists := bySource[src.Source]; exists {
			continue
		}
		bySource[src.Source] = src.Skills
	}

	for _, s := range SourcePriority {
		if skills, ok := bySource[s]; ok {
			return RoleSkillSource{Source: s, Skills: skills}, true
		}
	}
	return RoleSkillSource{}, false
}

type SkillMatch struct {
	SkillName  string
	UserLevel  SkillLevel
	Matched    bool
	Source     SkillSource
	Confidence float64
}

type Breakdown struct {
	SkillsScore float64
}

type RoleMatchScore struct {
	RoleID          uuid.UUID
	OverallScore    float64
	SkillsMatched   int
	TotalSkills     int
	MatchedSkills   []SkillMatch
	HasSkillsListed bool
	Breakdown       Breakdown
}

type Config struct {
	SkillsWeight          float64
	MinimumConfidence     float64
	FuzzyMatchThreshold   float64
	MinimumScoreThreshold float64
	HighLevelBonus        float64

	// TreatMissingSkillsAsError switches a role with no skill source from a
	// HasSkillsListed=false score to a batch error.
	TreatMissingSkillsAsError bool
}

func DefaultConfig() Config {
	return Config{
		SkillsWeight:          1.0,
		MinimumConfidence:     0.7,
		FuzzyMatchThreshold:   0.8,
		MinimumScoreThreshold: 0,
		HighLevelBonus:        1.2,
	}
}
