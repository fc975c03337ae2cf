package repository

import (
	"context"
	"time"

	"techrec/internal/database"

	"github.com/google/uuid"
)

type UserSkill struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	SkillName  string
	Level      string
	CategoryID *uuid.UUID
	UpdatedAt  time.Time
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, COALESCE(skill_name, ''), COALESCE(level, ''), category_id, updated_at
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY skill_name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillName, &us.Level, &us.CategoryID, &us.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
