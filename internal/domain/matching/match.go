package matching

// MatchSkills compares a role's declared skill names against a user's skill
// set. Every role skill name yields exactly one SkillMatch, matched or not,
// so len(result) always equals len(roleSkillNames).
//
// Exact normalized equality wins with confidence 1.0. Otherwise the best
// fuzzy candidate at or above cfg.FuzzyMatchThreshold is taken, confidence
// being the raw similarity. Ties go to the higher similarity, then the
// higher user level, then the earlier entry in userSkills.
func MatchSkills(cfg Config, userSkills []UserSkill, roleSkillNames []string, source SkillSource) []SkillMatch {
	out := make([]SkillMatch, 0, len(roleSkillNames))

	for _, roleName := range roleSkillNames {
		normalized := Normalize(roleName)
		out = append(out, matchOne(cfg, userSkills, roleName, normalized, source))
	}
	return out
}

func matchOne(cfg Config, userSkills []UserSkill, roleName, normalized string, source SkillSource) SkillMatch {
	for _, us := range userSkills {
		if us.Normalized != "" && us.Normalized == normalized {
			return SkillMatch{
				SkillName:  roleName,
				UserLevel:  us.Level,
				Matched:    true,
				Source:     source,
				Confidence: 1.0,
			}
		}
	}

	bestSim := 0.0
	bestLevel := LevelUnknown
	found := false
	for _, us := range userSkills {
		if us.Normalized == "" {
			continue
		}
		sim := Similarity(us.Normalized, normalized)
		if sim < cfg.FuzzyMatchThreshold {
			continue
		}
		if !found || sim > bestSim || (sim == bestSim && us.Level > bestLevel) {
			found = true
			bestSim = sim
			bestLevel = us.Level
		}
	}

	if found {
		return SkillMatch{
			SkillName:  roleName,
			UserLevel:  bestLevel,
			Matched:    true,
			Source:     source,
			Confidence: bestSim,
		}
	}

	return SkillMatch{
		SkillName: roleName,
		Source:    source,
	}
}
