package database

import (
	"context"
	"database/sql"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, workspace_id, name, email, phone, company, job_title,
	linkedin_url, sector, source, campaign_id, stage, created_at, updated_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, workspace_id, name, email, phone, company, job_title,
			linkedin_url, sector, source, campaign_id, stage, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.WorkspaceID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.JobTitle),
		nullString(lead.LinkedinURL),
		nullString(lead.Sector),
		nullString(lead.Source),
		lead.CampaignID,
		string(lead.Stage),
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1 AND workspace_id = $2`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, workspaceID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE workspace_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStage(ctx context.Context, workspaceID, id string, stage entity.Stage) error {
	query := `UPDATE leads SET stage = $1, updated_at = NOW() WHERE id = $2 AND workspace_id = $3`

	result, err := r.DB.ExecContext(ctx, query, string(stage), id, workspaceID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			name = $1, email = $2, phone = $3, company = $4, job_title = $5,
			linkedin_url = $6, sector = $7, source = $8,
			campaign_id = NULLIF($9, '')::uuid, stage = $10, updated_at = NOW()
		WHERE id = $11 AND workspace_id = $12
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.JobTitle),
		nullString(lead.LinkedinURL),
		nullString(lead.Sector),
		nullString(lead.Source),
		lead.CampaignID,
		string(lead.Stage),
		lead.ID,
		lead.WorkspaceID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, workspaceID, id string) error {
	query := `DELETE FROM leads WHERE id = $1 AND workspace_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, workspaceID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var email, phone, company, jobTitle, linkedin, sector, source, campaignID sql.NullString
	var stage string

	err := row.Scan(
		&lead.ID,
		&lead.WorkspaceID,
		&lead.Name,
		&email,
		&phone,
		&company,
		&jobTitle,
		&linkedin,
		&sector,
		&source,
		&campaignID,
		&stage,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Email = stringValue(email)
	lead.Phone = stringValue(phone)
	lead.Company = stringValue(company)
	lead.JobTitle = stringValue(jobTitle)
	lead.LinkedinURL = stringValue(linkedin)
	lead.Sector = stringValue(sector)
	lead.Source = stringValue(source)
	lead.CampaignID = stringValue(campaignID)
	lead.Stage = entity.Stage(stage)

	return &lead, nil
}
