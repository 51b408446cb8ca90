package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name must not be blank", apperrors.ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	project, err := s.projectRepo.SaveProject(ctx, domain.Project{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("name", name))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ID))
	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: project name must not be blank", apperrors.ErrValidation)
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	updated, err := s.projectRepo.UpdateProject(ctx, *project)
	if err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project %s: %w", projectID, err)
	}
	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrReferenced) {
			s.LogWarn(ctx, "Refusing to delete referenced project", slog.String("project_id", projectID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		}
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
