package repository

import (
	"context"
	"database/sql"
	"errors"

	"techrec/internal/database"
	"techrec/internal/domain/matching"
	"techrec/internal/domain/role"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRoleNotFound = errors.New("role not found")

type RoleListFilter struct {
	Title       string
	CompanyName string
	Location    string
	Limit       int
	Offset      int
}

type RoleRepository interface {
	FindByID(ctx context.Context, roleID uuid.UUID) (role.Role, error)
	ListRoles(ctx context.Context, f RoleListFilter) ([]role.Role, error)
}

type PostgresRoleRepository struct {
	db database.DB
}

func NewPostgresRoleRepository(db database.DB) *PostgresRoleRepository {
	return &PostgresRoleRepository{db: db}
}

const roleColumns = `id, COALESCE(title, ''), COALESCE(company_name, ''), COALESCE(location, ''), COALESCE(description, ''),
	 COALESCE(ai_key_skills, '{}'), COALESCE(role_skills, '{}'), COALESCE(linkedin_specialties, '{}'), COALESCE(description_skills, '{}'),
	 posted_at, created_at`

func (r *PostgresRoleRepository) FindByID(ctx context.Context, roleID uuid.UUID) (role.Role, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roleColumns+`
		 FROM roles
		 WHERE id = $1`,
		roleID,
	)

	out, err := scanRole(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, ErrRoleNotFound
		}
		return role.Role{}, err
	}
	return out, nil
}

func (r *PostgresRoleRepository) ListRoles(ctx context.Context, f RoleListFilter) ([]role.Role, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+roleColumns+`
		 FROM roles
		 WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR company_name ILIKE '%' || $2 || '%')
		   AND ($3 = '' OR location ILIKE '%' || $3 || '%')
		 ORDER BY COALESCE(posted_at, created_at) DESC
		 LIMIT $4 OFFSET $5`,
		f.Title, f.CompanyName, f.Location, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]role.Role, 0)
	for rows.Next() {
		item, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRole(row database.Row) (role.Role, error) {
	var out role.Role
	var aiSkills, roleSkills, linkedinSpecialties, descriptionSkills []string

	if err := row.Scan(
		&out.ID, &out.Title, &out.CompanyName, &out.Location, &out.Description,
		&aiSkills, &roleSkills, &linkedinSpecialties, &descriptionSkills,
		&out.PostedAt, &out.CreatedAt,
	); err != nil {
		return role.Role{}, err
	}

	out.SkillSources = []matching.RoleSkillSource{
		{Source: matching.SourceAIKeySkills, Skills: aiSkills},
		{Source: matching.SourceRoleSkills, Skills: roleSkills},
		{Source: matching.SourceLinkedInSpecialties, Skills: linkedinSpecialties},
		{Source: matching.SourceDescriptionDerived, Skills: descriptionSkills},
	}
	return out, nil
}
