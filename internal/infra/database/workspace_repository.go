package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

var ErrWorkspaceNameTaken = errors.New("já existe um workspace com esse nome")

type WorkspaceRepository struct {
	DB *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) *WorkspaceRepository {
	return &WorkspaceRepository{DB: db}
}

// Create grava o workspace e o criador como admin na mesma transação.
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO workspaces (id, name, created_by, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5)
	`,
		workspace.ID,
		workspace.Name,
		workspace.CreatedBy,
		workspace.CreatedAt,
		workspace.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrWorkspaceNameTaken
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	if workspace.CreatedBy != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workspace_members (id, workspace_id, user_id, role, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`,
			uuid.New().String(),
			workspace.ID,
			workspace.CreatedBy,
			entity.RoleAdmin,
			time.Now(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id string) (*entity.Workspace, error) {
	query := `SELECT id, name, created_by, created_at, updated_at FROM workspaces WHERE id = $1`

	workspace, err := scanWorkspace(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return workspace, nil
}

func (r *WorkspaceRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.created_by, w.created_at, w.updated_at
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.id
		WHERE m.user_id = $1
		ORDER BY w.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []*entity.Workspace
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, workspace)
	}

	return workspaces, rows.Err()
}

func (r *WorkspaceRepository) FindMember(ctx context.Context, workspaceID, userID string) (*entity.WorkspaceMember, error) {
	query := `
		SELECT id, workspace_id, user_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = $1 AND user_id = $2
	`

	var member entity.WorkspaceMember
	err := r.DB.QueryRowContext(ctx, query, workspaceID, userID).Scan(
		&member.ID,
		&member.WorkspaceID,
		&member.UserID,
		&member.Role,
		&member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func scanWorkspace(row rowScanner) (*entity.Workspace, error) {
	var workspace entity.Workspace
	var createdBy sql.NullString

	err := row.Scan(
		&workspace.ID,
		&workspace.Name,
		&createdBy,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	workspace.CreatedBy = stringValue(createdBy)
	return &workspace, nil
}
