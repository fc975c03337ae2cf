package handler

import (
	"errors"
	"log"

	"techrec/internal/delivery/http/dto"
	"techrec/internal/delivery/http/middleware"
	"techrec/internal/pkg/response"
	"techrec/internal/repository"
	"techrec/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// BatchNotifier pushes "scores ready" events to connected clients. nil
// disables notifications.
type BatchNotifier interface {
	MatchBatchCompleted(userID uuid.UUID, totalProcessed, errorCount int)
}

type MatchHandler struct {
	batch      usecase.BatchMatchUsecase
	single     usecase.MatchingUsecase
	userSkills repository.UserSkillRepository
	notifier   BatchNotifier
	logger     *log.Logger
}

func NewMatchHandler(batch usecase.BatchMatchUsecase, single usecase.MatchingUsecase, userSkills repository.UserSkillRepository, notifier BatchNotifier, logger *log.Logger) *MatchHandler {
	return &MatchHandler{batch: batch, single: single, userSkills: userSkills, notifier: notifier, logger: logger}
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)
	if userID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	roleID, err := uuid.Parse(c.Params("role_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid role id", nil, err)
	}

	score, err := h.single.CalculateMatch(c.Context(), userID, roleID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.NewRoleMatchScoreResponse(score))
}

func (h *MatchHandler) BatchMatch(c fiber.Ctx) error {
	userID := middleware.UserIDFromCtx(c)
	if userID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var body dto.BatchMatchRequest
	if err := c.Bind().Body(&body); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if len(body.RoleIDs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "role_ids is required", nil, nil)
	}

	roleIDs := make([]uuid.UUID, 0, len(body.RoleIDs))
	for _, raw := range body.RoleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid role id: "+raw, nil, err)
		}
		roleIDs = append(roleIDs, id)
	}

	skillRows, err := h.userSkills.FindByUserID(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	profile := usecase.SkillProfileFromRows(userID, skillRows)

	res, err := h.batch.ScoreBatch(c.Context(), usecase.BatchMatchRequest{
		UserID:     userID,
		RoleIDs:    roleIDs,
		UserSkills: profile.Skills,
	})
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	if h.notifier != nil {
		h.notifier.MatchBatchCompleted(userID, res.TotalProcessed, len(res.Errors))
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.NewBatchMatchResponse(res))
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidUserProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "User skill profile is empty or invalid", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
