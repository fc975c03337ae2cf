package matching

import "github.com/google/uuid"

// CalculateScore aggregates per-skill matches into a 0-100 score. A matched
// advanced/expert skill counts cfg.HighLevelBonus toward the numerator
// instead of 1. With no listed skills the score is 0 and HasSkillsListed is
// false; callers must gate on HasSkillsListed rather than compare that 0
// against a real score.
func CalculateScore(cfg Config, roleID uuid.UUID, matches []SkillMatch) RoleMatchScore {
	total := len(matches)
	if total == 0 {
		return RoleMatchScore{
			RoleID:        roleID,
			MatchedSkills: []SkillMatch{},
		}
	}

	matched := 0
	units := 0.0
	for _, m := range matches {
		if !m.Matched || m.Confidence < cfg.MinimumConfidence {
			continue
		}
		matched++
		if m.UserLevel >= LevelAdvanced {
			units += cfg.HighLevelBonus
		} else {
			units += 1.0
		}
	}

	skillsScore := clamp(units/float64(total)*100, 0, 100)
	overall := clamp(skillsScore*cfg.SkillsWeight, 0, 100)

	return RoleMatchScore{
		RoleID:          roleID,
		OverallScore:    overall,
		SkillsMatched:   matched,
		TotalSkills:     total,
		MatchedSkills:   matches,
		HasSkillsListed: true,
		Breakdown:       Breakdown{SkillsScore: skillsScore},
	}
}

// ScoreRole resolves the role's skill source, matches it against the user's
// skills and aggregates. ok mirrors whether any source had content.
func ScoreRole(cfg Config, roleID uuid.UUID, sources []RoleSkillSource, userSkills []UserSkill) (RoleMatchScore, bool) {
	src, ok := ResolveSkillSource(sources)
	if !ok {
		return RoleMatchScore{
			RoleID:        roleID,
			MatchedSkills: []SkillMatch{},
		}, false
	}

	matches := MatchSkills(cfg, userSkills, src.Skills, src.Source)
	return CalculateScore(cfg, roleID, matches), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
