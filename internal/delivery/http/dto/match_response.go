package dto

import (
	"techrec/internal/domain/matching"
	"techrec/internal/usecase"

	"github.com/google/uuid"
)

type SkillMatchResponse struct {
	SkillName  string  `json:"skill_name"`
	UserLevel  string  `json:"user_level"`
	Matched    bool    `json:"matched"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

type BreakdownResponse struct {
	SkillsScore float64 `json:"skills_score"`
}

type RoleMatchScoreResponse struct {
	RoleID          uuid.UUID            `json:"role_id"`
	OverallScore    float64              `json:"overall_score"`
	SkillsMatched   int                  `json:"skills_matched"`
	TotalSkills     int                  `json:"total_skills"`
	MatchedSkills   []SkillMatchResponse `json:"matched_skills"`
	HasSkillsListed bool                 `json:"has_skills_listed"`
	Breakdown       BreakdownResponse    `json:"breakdown"`
}

type MatchErrorResponse struct {
	RoleID uuid.UUID `json:"role_id"`
	Error  string    `json:"error"`
	Code   string    `json:"code"`
}

type BatchMatchResponse struct {
	UserID           uuid.UUID                `json:"user_id"`
	RoleScores       []RoleMatchScoreResponse `json:"role_scores"`
	TotalProcessed   int                      `json:"total_processed"`
	ProcessingTimeMs int64                    `json:"processing_time_ms"`
	Errors           []MatchErrorResponse     `json:"errors"`
}

func NewRoleMatchScoreResponse(s matching.RoleMatchScore) RoleMatchScoreResponse {
	matched := make([]SkillMatchResponse, 0, len(s.MatchedSkills))
	for _, m := range s.MatchedSkills {
		matched = append(matched, SkillMatchResponse{
			SkillName:  m.SkillName,
			UserLevel:  m.UserLevel.String(),
			Matched:    m.Matched,
			Source:     m.Source.String(),
			Confidence: m.Confidence,
		})
	}
	return RoleMatchScoreResponse{
		RoleID:          s.RoleID,
		OverallScore:    s.OverallScore,
		SkillsMatched:   s.SkillsMatched,
		TotalSkills:     s.TotalSkills,
		MatchedSkills:   matched,
		HasSkillsListed: s.HasSkillsListed,
		Breakdown:       BreakdownResponse{SkillsScore: s.Breakdown.SkillsScore},
	}
}

func NewBatchMatchResponse(resp usecase.BatchMatchResponse) BatchMatchResponse {
	scores := make([]RoleMatchScoreResponse, 0, len(resp.RoleScores))
	for _, s := range resp.RoleScores {
		scores = append(scores, NewRoleMatchScoreResponse(s))
	}
	errs := make([]MatchErrorResponse, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		errs = append(errs, MatchErrorResponse{RoleID: e.RoleID, Error: e.Error, Code: string(e.Code)})
	}
	return BatchMatchResponse{
		UserID:           resp.UserID,
		RoleScores:       scores,
		TotalProcessed:   resp.TotalProcessed,
		ProcessingTimeMs: resp.ProcessingTime.Milliseconds(),
		Errors:           errs,
	}
}
