package dto

import "unibridge_backend/internal/models"

// CreateProjectRequest - создание проекта. organization_id клиентом не
// передается: владелец всегда берется из принципала.
type CreateProjectRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	RequiredSkills string `json:"required_skills"`
	Duration       string `json:"duration"`
}

// UpdateProjectRequest - частичное обновление проекта
type UpdateProjectRequest struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	RequiredSkills *string `json:"required_skills,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// SearchProjectsRequest - параметры поиска по открытым проектам
type SearchProjectsRequest struct {
	Search string `form:"search"`
	Skip   int    `form:"skip" binding:"omitempty,min=0"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

// ProjectListResponse - страница результатов поиска
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	Total    int64            `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}
