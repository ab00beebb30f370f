package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OutreachSender entrega o conteúdo por email.
type OutreachSender interface {
	SendOutreach(to, name, content string) error
}

// WhatsAppSenderInterface entrega o conteúdo por WhatsApp.
type WhatsAppSenderInterface interface {
	SendText(phone, content string) error
}

// Worker consome a fila de despacho e roteia cada mensagem para o canal
// indicado no payload. Desacoplado do banco: tudo que precisa vem no payload.
type Worker struct {
	Channel  *amqp.Channel
	Email    OutreachSender
	WhatsApp WhatsAppSenderInterface
}

func NewWorker(ch *amqp.Channel, email OutreachSender, whatsapp WhatsAppSenderInterface) *Worker {
	return &Worker{
		Channel:  ch,
		Email:    email,
		WhatsApp: whatsapp,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DispatchPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Despachando mensagem %s via %s", payload.MessageID, payload.Channel)

			if err := w.deliver(payload); err != nil {
				log.Printf("❌ [WORKER] Falha na entrega: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Mensagem %s entregue para %s", payload.MessageID, payload.LeadName)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) deliver(payload DispatchPayload) error {
	switch payload.Channel {
	case ChannelWhatsApp:
		return w.WhatsApp.SendText(payload.LeadPhone, payload.Content)
	default:
		return w.Email.SendOutreach(payload.LeadEmail, payload.LeadName, payload.Content)
	}
}
