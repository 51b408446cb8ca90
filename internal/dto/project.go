package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name        string              `json:"name" binding:"required,max=255"`
	Description string              `json:"description"`
	Status      domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateProjectRequest defines the fields that can be changed on a project.
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name        *string              `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string              `json:"description"`
	Status      *domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      domain.RecordStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListProjectResponse converts a slice of domain.Project to ProjectResponse DTOs
func ToListProjectResponse(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i := range projects {
		res[i] = ToProjectResponse(&projects[i])
	}
	return res
}
