package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

// MessageRepository persiste ai_messages. A tabela não carrega workspace_id:
// o escopo de tenant vem sempre do join com o lead dono da mensagem.
type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

const messageColumns = `
	m.id, m.lead_id, m.campaign_id, m.content, m.is_sent, m.sent_at, m.created_at
`

func (r *MessageRepository) Create(ctx context.Context, message *entity.AIMessage) error {
	query := `
		INSERT INTO ai_messages (id, lead_id, campaign_id, content, is_sent, sent_at, created_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		message.ID,
		message.LeadID,
		message.CampaignID,
		message.Content,
		message.IsSent,
		message.SentAt,
		message.CreatedAt,
	)

	return err
}

func (r *MessageRepository) FindByID(ctx context.Context, workspaceID, id string) (*entity.AIMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM ai_messages m
		JOIN leads l ON l.id = m.lead_id
		WHERE m.id = $1 AND l.workspace_id = $2
	`

	message, err := scanMessage(r.DB.QueryRowContext(ctx, query, id, workspaceID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return message, nil
}

func (r *MessageRepository) ListByLead(ctx context.Context, workspaceID, leadID string) ([]*entity.AIMessage, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM ai_messages m
		JOIN leads l ON l.id = m.lead_id
		WHERE m.lead_id = $1 AND l.workspace_id = $2
		ORDER BY m.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*entity.AIMessage
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) MarkSent(ctx context.Context, workspaceID, id string, sentAt time.Time) error {
	// is_sent e sent_at mudam juntos, nunca separados.
	query := `
		UPDATE ai_messages m SET is_sent = TRUE, sent_at = $1
		FROM leads l
		WHERE m.id = $2 AND l.id = m.lead_id AND l.workspace_id = $3
	`

	result, err := r.DB.ExecContext(ctx, query, sentAt, id, workspaceID)
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

func (r *MessageRepository) Delete(ctx context.Context, workspaceID, id string) error {
	query := `
		DELETE FROM ai_messages m
		USING leads l
		WHERE m.id = $1 AND l.id = m.lead_id AND l.workspace_id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, id, workspaceID)
	return err
}

func scanMessage(row rowScanner) (*entity.AIMessage, error) {
	var message entity.AIMessage
	var campaignID sql.NullString
	var sentAt sql.NullTime

	err := row.Scan(
		&message.ID,
		&message.LeadID,
		&campaignID,
		&message.Content,
		&message.IsSent,
		&sentAt,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	message.CampaignID = stringValue(campaignID)
	if sentAt.Valid {
		t := sentAt.Time
		message.SentAt = &t
	}

	return &message, nil
}
