package dto

type BatchMatchRequest struct {
	RoleIDs []string `json:"role_ids"`
}
