package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"techrec/internal/domain/matching"
	"techrec/internal/domain/role"
	"techrec/internal/repository"
	"techrec/internal/worker"

	"github.com/google/uuid"
)

type MatchErrorCode string

const (
	MatchErrRoleNotFound       MatchErrorCode = "ROLE_NOT_FOUND"
	MatchErrNoSkillsData       MatchErrorCode = "NO_SKILLS_DATA"
	MatchErrInvalidUserProfile MatchErrorCode = "INVALID_USER_PROFILE"
	MatchErrProcessing         MatchErrorCode = "PROCESSING_ERROR"
)

type MatchError struct {
	RoleID uuid.UUID
	Error  string
	Code   MatchErrorCode
}

type BatchMatchRequest struct {
	UserID     uuid.UUID
	RoleIDs    []uuid.UUID
	UserSkills []matching.UserSkill
}

type BatchMatchResponse struct {
	UserID         uuid.UUID
	RoleScores     []matching.RoleMatchScore
	TotalProcessed int
	ProcessingTime time.Duration
	Errors         []MatchError
}

// RoleResolver is the injected lookup boundary; timeouts and retries belong
// to its implementation, not to the scorer.
type RoleResolver interface {
	FindByID(ctx context.Context, roleID uuid.UUID) (role.Role, error)
}

type BatchMatchUsecase interface {
	ScoreBatch(ctx context.Context, req BatchMatchRequest) (BatchMatchResponse, error)
}

type BatchMatch struct {
	roles   RoleResolver
	cfg     matching.Config
	workers int
	logger  *log.Logger
}

func NewBatchMatchUsecase(roles RoleResolver, cfg matching.Config, workers int, logger *log.Logger) *BatchMatch {
	if workers <= 0 {
		workers = 4
	}
	return &BatchMatch{roles: roles, cfg: cfg, workers: workers, logger: logger}
}

type roleOutcome struct {
	score    matching.RoleMatchScore
	err      *MatchError
	resolved bool
}

// ScoreBatch scores every requested role against the user's skill snapshot.
// Per-role failures are collected, never propagated; only an invalid profile
// aborts the batch. Each role ID lands in exactly one of RoleScores/Errors.
func (u *BatchMatch) ScoreBatch(ctx context.Context, req BatchMatchRequest) (BatchMatchResponse, error) {
	start := time.Now()

	if req.UserID == uuid.Nil {
		return BatchMatchResponse{}, ErrUnauthorized
	}
	if len(req.UserSkills) == 0 {
		return BatchMatchResponse{}, ErrInvalidUserProfile
	}
	for _, us := range req.UserSkills {
		if us.Normalized != matching.Normalize(us.Name) {
			return BatchMatchResponse{}, ErrInvalidUserProfile
		}
	}

	roleIDs := dedupeRoleIDs(req.RoleIDs)
	outcomes := make([]roleOutcome, len(roleIDs))

	pool := worker.NewPool(u.workers, len(roleIDs))
	for i, roleID := range roleIDs {
		pool.Submit(func(taskCtx context.Context) {
			outcomes[i] = u.scoreOne(taskCtx, roleID, req.UserSkills)
		})
	}
	pool.Close()
	pool.Run(ctx)

	resp := BatchMatchResponse{
		UserID:     req.UserID,
		RoleScores: make([]matching.RoleMatchScore, 0, len(roleIDs)),
		Errors:     make([]MatchError, 0),
	}
	for i, o := range outcomes {
		if !o.resolved {
			// Context cancellation kept the worker from reaching this role.
			resp.Errors = append(resp.Errors, MatchError{
				RoleID: roleIDs[i],
				Error:  "scoring did not complete",
				Code:   MatchErrProcessing,
			})
			continue
		}
		if o.err != nil {
			resp.Errors = append(resp.Errors, *o.err)
			continue
		}
		resp.RoleScores = append(resp.RoleScores, o.score)
	}

	resp.TotalProcessed = len(resp.RoleScores) + len(resp.Errors)
	resp.ProcessingTime = time.Since(start)

	if u.logger != nil {
		u.logger.Printf("[Match] Batch scored | user=%s roles=%d errors=%d took=%s",
			req.UserID, len(resp.RoleScores), len(resp.Errors), resp.ProcessingTime)
	}
	return resp, nil
}

func (u *BatchMatch) scoreOne(ctx context.Context, roleID uuid.UUID, userSkills []matching.UserSkill) (out roleOutcome) {
	out.resolved = true
	defer func() {
		if r := recover(); r != nil {
			out = roleOutcome{
				resolved: true,
				err: &MatchError{
					RoleID: roleID,
					Error:  fmt.Sprintf("panic: %v", r),
					Code:   MatchErrProcessing,
				},
			}
		}
	}()

	if roleID == uuid.Nil {
		out.err = &MatchError{RoleID: roleID, Error: "role not found", Code: MatchErrRoleNotFound}
		return out
	}

	rl, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			out.err = &MatchError{RoleID: roleID, Error: "role not found", Code: MatchErrRoleNotFound}
			return out
		}
		out.err = &MatchError{RoleID: roleID, Error: err.Error(), Code: MatchErrProcessing}
		return out
	}

	score, hasSkills := matching.ScoreRole(u.cfg, roleID, rl.SkillSources, userSkills)
	if !hasSkills && u.cfg.TreatMissingSkillsAsError {
		out.err = &MatchError{RoleID: roleID, Error: "no skill source has content", Code: MatchErrNoSkillsData}
		return out
	}

	out.score = score
	return out
}

// dedupeRoleIDs collapses repeats while keeping first-seen order. A nil ID
// survives dedupe so it can surface as a per-role error downstream.
func dedupeRoleIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
