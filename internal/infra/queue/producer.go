package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Canais de entrega suportados pelo worker de despacho.
const (
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
)

// DispatchPayload carrega uma mensagem de abordagem já marcada como enviada
// para o worker entregar no canal do lead.
type DispatchPayload struct {
	MessageID   string `json:"message_id"`
	WorkspaceID string `json:"workspace_id"`
	LeadID      string `json:"lead_id"`
	Channel     string `json:"channel"` // EMAIL ou WHATSAPP

	LeadName  string `json:"lead_name"`
	LeadEmail string `json:"lead_email,omitempty"`
	LeadPhone string `json:"lead_phone,omitempty"`

	Content      string `json:"content"`
	CampaignName string `json:"campaign_name,omitempty"`
}

type DispatchProducerInterface interface {
	PublishDispatch(ctx context.Context, payload DispatchPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishDispatch(ctx context.Context, payload DispatchPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
