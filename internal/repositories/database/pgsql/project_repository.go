package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/models"
	"github.com/SscSPs/teminat_takip/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `id, name, description, status, created_at`

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	m, err := queryOne[models.Project](ctx, r.Pool,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return nil, mapReadError(err, "project "+projectID)
	}
	d := mapping.ToDomainProject(m)
	return &d, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := queryAll(ctx, r.Pool, mapping.ToDomainProjectSlice,
		`SELECT `+projectColumns+` FROM projects ORDER BY name, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	m := mapping.ToModelProject(project)
	saved, err := queryOne[models.Project](ctx, r.Pool, `
		INSERT INTO projects (name, description, status)
		VALUES ($1, $2, $3)
		RETURNING `+projectColumns,
		m.Name, m.Description, m.Status,
	)
	if err != nil {
		return nil, mapWriteError(err, "project")
	}
	d := mapping.ToDomainProject(saved)
	return &d, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	m := mapping.ToModelProject(project)
	updated, err := queryOne[models.Project](ctx, r.Pool, `
		UPDATE projects SET name = $2, description = $3, status = $4
		WHERE id = $1
		RETURNING `+projectColumns,
		m.ID, m.Name, m.Description, m.Status,
	)
	if err != nil {
		return nil, mapWriteError(err, "project "+project.ID)
	}
	d := mapping.ToDomainProject(updated)
	return &d, nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	return r.execDelete(ctx, `DELETE FROM projects WHERE id = $1`, projectID, "project")
}
