package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortByMatch   SortField = "match"
	SortByDate    SortField = "date"
	SortByTitle   SortField = "title"
	SortByCompany SortField = "company"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type FilterOptions struct {
	MinScore float64
	MaxScore float64

	RequireSkillsListed bool

	// ShowOnlyMatches currently collapses to the same predicate as
	// RequireSkillsListed; kept as a distinct flag pending product
	// clarification.
	ShowOnlyMatches bool

	SortBy        SortField
	SortDirection SortDirection
}

// RoleListing is the pipeline's own view of a role; callers map their role
// rows into it, mirroring how listings are ranked elsewhere in this repo.
type RoleListing struct {
	OriginalIndex int
	ID            uuid.UUID
	Title         string
	CompanyName   string
	PostedAt      *time.Time
	CreatedAt     time.Time
}

// ApplyMatchFilters narrows and orders role listings against computed match
// scores. Pure: inputs are never mutated, absent data degrades to "sorts
// last" or is excluded only when a flag says so.
func ApplyMatchFilters(listings []RoleListing, scores map[uuid.UUID]RoleMatchScore, opts FilterOptions) []RoleListing {
	out := make([]RoleListing, 0, len(listings))

	for _, l := range listings {
		score, comparable := comparableScore(scores, l.ID)

		if comparable {
			if score < opts.MinScore || score > opts.MaxScore {
				continue
			}
		} else if opts.MinScore != 0 {
			// Unknown scores are inclusive only at the floor.
			continue
		}

		if (opts.RequireSkillsListed || opts.ShowOnlyMatches) && !comparable {
			continue
		}

		out = append(out, l)
	}

	sortListings(out, scores, opts)
	return out
}

func comparableScore(scores map[uuid.UUID]RoleMatchScore, id uuid.UUID) (float64, bool) {
	s, ok := scores[id]
	if !ok || !s.HasSkillsListed {
		return 0, false
	}
	return s.OverallScore, true
}

func sortListings(listings []RoleListing, scores map[uuid.UUID]RoleMatchScore, opts FilterOptions) {
	if len(listings) < 2 {
		return
	}

	asc := opts.SortDirection == SortAsc

	switch opts.SortBy {
	case SortByDate:
		sort.SliceStable(listings, func(i, j int) bool {
			ti, iok := listingTime(listings[i])
			tj, jok := listingTime(listings[j])
			if iok != jok {
				return iok
			}
			if !iok {
				return false
			}
			if asc {
				return ti.Before(tj)
			}
			return ti.After(tj)
		})

	case SortByTitle, SortByCompany:
		c := collate.New(language.English, collate.IgnoreCase)
		field := func(l RoleListing) string {
			if opts.SortBy == SortByCompany {
				return l.CompanyName
			}
			return l.Title
		}
		sort.SliceStable(listings, func(i, j int) bool {
			cmp := c.CompareString(field(listings[i]), field(listings[j]))
			if opts.SortDirection == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		})

	default: // SortByMatch
		sort.SliceStable(listings, func(i, j int) bool {
			si, iok := comparableScore(scores, listings[i].ID)
			sj, jok := comparableScore(scores, listings[j].ID)
			// No-skill-data roles trail regardless of direction.
			if iok != jok {
				return iok
			}
			if !iok {
				return false
			}
			if asc {
				return si < sj
			}
			return si > sj
		})
	}
}

func listingTime(l RoleListing) (time.Time, bool) {
	if l.PostedAt != nil && !l.PostedAt.IsZero() {
		return *l.PostedAt, true
	}
	if !l.CreatedAt.IsZero() {
		return l.CreatedAt, true
	}
	return time.Time{}, false
}
