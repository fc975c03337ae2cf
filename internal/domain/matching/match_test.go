package matching

import "testing"

func TestMatchSkills_Totality(t *testing.T) {
	cfg := DefaultConfig()
	user := []UserSkill{NewUserSkill("Go", LevelExpert, "")}

	roleSkills := []string{"Go", "Python", "Rust", "nonsense-skill"}
	out := MatchSkills(cfg, user, roleSkills, SourceRoleSkills)
	if len(out) != len(roleSkills) {
		t.Fatalf("expected %d matches, got %d", len(roleSkills), len(out))
	}

	out = MatchSkills(cfg, nil, roleSkills, SourceRoleSkills)
	if len(out) != len(roleSkills) {
		t.Fatalf("expected one SkillMatch per role skill even with no user skills")
	}
	for _, m := range out {
		if m.Matched || m.Confidence != 0 {
			t.Fatalf("unmatched skill must carry matched=false confidence=0")
		}
	}
}

func TestMatchSkills_ExactNormalizedMatch(t *testing.T) {
	cfg := DefaultConfig()
	user := []UserSkill{NewUserSkill("TypeScript", LevelIntermediate, "")}

	out := MatchSkills(cfg, user, []string{"typescript "}, SourceRoleSkills)
	if len(out) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out))
	}
	m := out[0]
	if !m.Matched {
		t.Fatalf("case/whitespace variants must match exactly")
	}
	if m.Confidence != 1.0 {
		t.Fatalf("exact match confidence must be 1.0, got %f", m.Confidence)
	}
	if m.UserLevel != LevelIntermediate {
		t.Fatalf("match must carry the user's level")
	}
	if m.Source != SourceRoleSkills {
		t.Fatalf("match must carry the role skill source")
	}
}

func TestMatchSkills_FuzzyAcceptance(t *testing.T) {
	cfg := DefaultConfig()
	user := []UserSkill{NewUserSkill("javascripts", LevelBeginner, "")}

	out := MatchSkills(cfg, user, []string{"javascript"}, SourceAIKeySkills)
	m := out[0]
	if !m.Matched {
		t.Fatalf("similarity above threshold should match")
	}
	if m.Confidence >= 1.0 || m.Confidence < cfg.FuzzyMatchThreshold {
		t.Fatalf("fuzzy confidence should be the raw similarity, got %f", m.Confidence)
	}
}

func TestMatchSkills_FuzzyRejectedBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	user := []UserSkill{NewUserSkill("Go", LevelExpert, "")}

	out := MatchSkills(cfg, user, []string{"Erlang"}, SourceRoleSkills)
	if out[0].Matched {
		t.Fatalf("dissimilar skills must not match")
	}
}

func TestMatchSkills_TieBreakPrefersHigherLevel(t *testing.T) {
	cfg := DefaultConfig()
	// Both are equally similar to the role skill; the higher level wins.
	user := []UserSkill{
		NewUserSkill("reacts", LevelBeginner, ""),
		NewUserSkill("reactt", LevelExpert, ""),
	}

	out := MatchSkills(cfg, user, []string{"react"}, SourceRoleSkills)
	m := out[0]
	if !m.Matched {
		t.Fatalf("expected fuzzy match")
	}
	if m.UserLevel != LevelExpert {
		t.Fatalf("tie should prefer the higher user level, got %v", m.UserLevel)
	}
}

func TestMatchSkills_TieBreakStableOnEqualLevel(t *testing.T) {
	cfg := DefaultConfig()
	user := []UserSkill{
		NewUserSkill("reacts", LevelIntermediate, ""),
		NewUserSkill("reactt", LevelIntermediate, ""),
	}

	out := MatchSkills(cfg, user, []string{"react"}, SourceRoleSkills)
	if !out[0].Matched || out[0].UserLevel != LevelIntermediate {
		t.Fatalf("equal-similarity equal-level tie should still match stably")
	}
}

func TestResolveSkillSource_Priority(t *testing.T) {
	sources := []RoleSkillSource{
		{Source: SourceDescriptionDerived, Skills: []string{"go"}},
		{Source: SourceRoleSkills, Skills: []string{"python"}},
	}
	src, ok := ResolveSkillSource(sources)
	if !ok {
		t.Fatalf("expected a source")
	}
	if src.Source != SourceRoleSkills {
		t.Fatalf("role_skills outranks description_derived, got %v", src.Source)
	}

	sources = []RoleSkillSource{
		{Source: SourceAIKeySkills, Skills: nil},
		{Source: SourceLinkedInSpecialties, Skills: []string{"fintech"}},
	}
	src, ok = ResolveSkillSource(sources)
	if !ok || src.Source != SourceLinkedInSpecialties {
		t.Fatalf("empty lists must be skipped in priority order")
	}

	if _, ok := ResolveSkillSource(nil); ok {
		t.Fatalf("no sources means no resolution")
	}
}

func TestParseSkillLevel(t *testing.T) {
	if ParseSkillLevel("ADVANCED") != LevelAdvanced {
		t.Fatalf("level parsing should be case-insensitive")
	}
	if ParseSkillLevel("wizard") != LevelUnknown {
		t.Fatalf("unknown levels parse to LevelUnknown")
	}
	if !(LevelBeginner < LevelIntermediate && LevelIntermediate < LevelAdvanced && LevelAdvanced < LevelExpert) {
		t.Fatalf("levels must be ordinal")
	}
}
