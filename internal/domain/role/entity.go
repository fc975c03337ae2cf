package role

import (
	"time"

	"github.com/google/uuid"

	"techrec/internal/domain/matching"
)

type Role struct {
	ID          uuid.UUID
	Title       string
	CompanyName string
	Location    string
	Description string

	// SkillSources holds every skill list attached to the posting; the
	// matching engine picks one by source priority.
	SkillSources []matching.RoleSkillSource

	PostedAt  *time.Time
	CreatedAt time.Time
}
