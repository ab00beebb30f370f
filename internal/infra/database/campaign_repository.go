package database

import (
	"context"
	"database/sql"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

const campaignColumns = `
	id, workspace_id, name, offer_context, ai_prompt, is_active,
	trigger_stage, created_at, updated_at
`

func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (
			id, workspace_id, name, offer_context, ai_prompt, is_active,
			trigger_stage, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		campaign.ID,
		campaign.WorkspaceID,
		campaign.Name,
		nullString(campaign.OfferContext),
		nullString(campaign.AIPrompt),
		campaign.IsActive,
		nullString(string(campaign.TriggerStage)),
		campaign.CreatedAt,
		campaign.UpdatedAt,
	)

	return err
}

func (r *CampaignRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 AND workspace_id = $2`

	campaign, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id, workspaceID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

func (r *CampaignRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE workspace_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, workspaceID)
}

func (r *CampaignRepository) ListActiveByTrigger(ctx context.Context, workspaceID string, stage entity.Stage) ([]*entity.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE workspace_id = $1 AND is_active = TRUE AND trigger_stage = $2
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, workspaceID, string(stage))
}

func (r *CampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns SET
			name = $1, offer_context = $2, ai_prompt = $3, is_active = $4,
			trigger_stage = $5, updated_at = NOW()
		WHERE id = $6 AND workspace_id = $7
	`

	result, err := r.DB.ExecContext(ctx, query,
		campaign.Name,
		nullString(campaign.OfferContext),
		nullString(campaign.AIPrompt),
		campaign.IsActive,
		nullString(string(campaign.TriggerStage)),
		campaign.ID,
		campaign.WorkspaceID,
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

func (r *CampaignRepository) Delete(ctx context.Context, workspaceID, id string) error {
	query := `DELETE FROM campaigns WHERE id = $1 AND workspace_id = $2`
	_, err := r.DB.ExecContext(ctx, query, id, workspaceID)
	return err
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Campaign, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row rowScanner) (*entity.Campaign, error) {
	var campaign entity.Campaign
	var offerContext, aiPrompt, triggerStage sql.NullString

	err := row.Scan(
		&campaign.ID,
		&campaign.WorkspaceID,
		&campaign.Name,
		&offerContext,
		&aiPrompt,
		&campaign.IsActive,
		&triggerStage,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.OfferContext = stringValue(offerContext)
	campaign.AIPrompt = stringValue(aiPrompt)
	campaign.TriggerStage = entity.Stage(stringValue(triggerStage))

	return &campaign, nil
}
