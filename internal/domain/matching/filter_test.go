package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func listing(idx int, title, company string) RoleListing {
	return RoleListing{OriginalIndex: idx, ID: uuid.New(), Title: title, CompanyName: company}
}

func scored(overall float64) RoleMatchScore {
	return RoleMatchScore{OverallScore: overall, HasSkillsListed: true}
}

func TestApplyMatchFilters_ScoreRange(t *testing.T) {
	a := listing(0, "A", "")
	b := listing(1, "B", "")
	scores := map[uuid.UUID]RoleMatchScore{
		a.ID: scored(40),
		b.ID: scored(90),
	}

	out := ApplyMatchFilters([]RoleListing{a, b}, scores, FilterOptions{MinScore: 50, MaxScore: 100})
	if len(out) != 1 || out[0].ID != b.ID {
		t.Fatalf("expected only the 90-score role")
	}
}

func TestApplyMatchFilters_UnknownScoreInclusiveOnlyAtFloor(t *testing.T) {
	noData := listing(0, "NoData", "")
	out := ApplyMatchFilters([]RoleListing{noData}, map[uuid.UUID]RoleMatchScore{}, FilterOptions{MinScore: 0, MaxScore: 100})
	if len(out) != 1 {
		t.Fatalf("minScore=0 keeps roles without score data")
	}

	out = ApplyMatchFilters([]RoleListing{noData}, map[uuid.UUID]RoleMatchScore{}, FilterOptions{MinScore: 1, MaxScore: 100})
	if len(out) != 0 {
		t.Fatalf("minScore>0 excludes roles without score data")
	}
}

func TestApplyMatchFilters_RequireSkillsListed(t *testing.T) {
	withSkills := listing(0, "A", "")
	withoutSkills := listing(1, "B", "")
	scores := map[uuid.UUID]RoleMatchScore{
		withSkills.ID:    scored(10),
		withoutSkills.ID: {HasSkillsListed: false},
	}

	out := ApplyMatchFilters([]RoleListing{withSkills, withoutSkills}, scores, FilterOptions{
		MaxScore:            100,
		RequireSkillsListed: true,
	})
	if len(out) != 1 || out[0].ID != withSkills.ID {
		t.Fatalf("requireSkillsListed must drop no-data roles")
	}

	// showOnlyMatches currently shares the predicate.
	out = ApplyMatchFilters([]RoleListing{withSkills, withoutSkills}, scores, FilterOptions{
		MaxScore:        100,
		ShowOnlyMatches: true,
	})
	if len(out) != 1 || out[0].ID != withSkills.ID {
		t.Fatalf("showOnlyMatches must drop no-data roles")
	}
}

func TestApplyMatchFilters_NarrowingIsMonotonic(t *testing.T) {
	listings := make([]RoleListing, 0, 6)
	scores := map[uuid.UUID]RoleMatchScore{}
	for i, s := range []float64{5, 25, 45, 65, 85, 100} {
		l := listing(i, "r", "")
		listings = append(listings, l)
		scores[l.ID] = scored(s)
	}

	wide := ApplyMatchFilters(listings, scores, FilterOptions{MinScore: 0, MaxScore: 100})
	narrow := ApplyMatchFilters(listings, scores, FilterOptions{MinScore: 20, MaxScore: 80})
	if len(narrow) > len(wide) {
		t.Fatalf("narrowing the score range can never grow the result")
	}
}

func TestApplyMatchFilters_SortByMatchDesc(t *testing.T) {
	low := listing(0, "Low", "")
	high := listing(1, "High", "")
	scores := map[uuid.UUID]RoleMatchScore{
		low.ID:  scored(40),
		high.ID: scored(90),
	}

	out := ApplyMatchFilters([]RoleListing{low, high}, scores, FilterOptions{
		MaxScore: 100, SortBy: SortByMatch, SortDirection: SortDesc,
	})
	if out[0].ID != high.ID || out[1].ID != low.ID {
		t.Fatalf("desc sort must order 90 before 40")
	}
}

func TestApplyMatchFilters_NoDataSortsLastBothDirections(t *testing.T) {
	noData := listing(0, "NoData", "")
	withData := listing(1, "Scored", "")
	scores := map[uuid.UUID]RoleMatchScore{
		noData.ID:   {HasSkillsListed: false},
		withData.ID: scored(1),
	}
	in := []RoleListing{noData, withData}

	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		out := ApplyMatchFilters(in, scores, FilterOptions{MaxScore: 100, SortBy: SortByMatch, SortDirection: dir})
		if len(out) != 2 {
			t.Fatalf("both roles should pass a [0,100] range")
		}
		if out[len(out)-1].ID != noData.ID {
			t.Fatalf("hasSkillsListed=false must sort last under direction %s", dir)
		}
	}
}

func TestApplyMatchFilters_SortByTitleAndCompany(t *testing.T) {
	a := listing(0, "alpha", "Zeta Corp")
	b := listing(1, "Beta", "acme")

	out := ApplyMatchFilters([]RoleListing{b, a}, nil, FilterOptions{MaxScore: 100, SortBy: SortByTitle, SortDirection: SortAsc})
	if out[0].ID != a.ID {
		t.Fatalf("title sort should be case-insensitive locale compare")
	}

	out = ApplyMatchFilters([]RoleListing{a, b}, nil, FilterOptions{MaxScore: 100, SortBy: SortByCompany, SortDirection: SortAsc})
	if out[0].ID != b.ID {
		t.Fatalf("company sort should order acme before Zeta Corp")
	}
}

func TestApplyMatchFilters_SortByDate(t *testing.T) {
	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now()

	older := RoleListing{OriginalIndex: 0, ID: uuid.New(), PostedAt: &old}
	newer := RoleListing{OriginalIndex: 1, ID: uuid.New(), PostedAt: &fresh}
	undated := RoleListing{OriginalIndex: 2, ID: uuid.New()}

	out := ApplyMatchFilters([]RoleListing{older, undated, newer}, nil, FilterOptions{
		MaxScore: 100, SortBy: SortByDate, SortDirection: SortDesc,
	})
	if out[0].ID != newer.ID || out[1].ID != older.ID || out[2].ID != undated.ID {
		t.Fatalf("date desc should order newest first with undated last")
	}
}

func TestApplyMatchFilters_DoesNotMutateInput(t *testing.T) {
	a := listing(0, "b", "")
	b := listing(1, "a", "")
	in := []RoleListing{a, b}

	_ = ApplyMatchFilters(in, nil, FilterOptions{MaxScore: 100, SortBy: SortByTitle, SortDirection: SortAsc})
	if in[0].ID != a.ID || in[1].ID != b.ID {
		t.Fatalf("input slice must not be reordered")
	}
}
