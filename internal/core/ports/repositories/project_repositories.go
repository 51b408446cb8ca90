package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects ordered by name.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject inserts a project and returns it with its store-generated ID.
	SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// UpdateProject overwrites the mutable fields of a project.
	UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error)

	// DeleteProject removes a project. Fails with ErrReferenced while letters or credits point at it.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
