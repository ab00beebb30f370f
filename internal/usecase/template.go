package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

// Picker escolhe um índice em [0, n). Injetado para que os testes possam
// fixar o template e afirmar o texto exato.
type Picker func(n int) int

// DefaultPicker sorteia o template de forma uniforme. Variedade de conteúdo,
// não é uma escolha com peso de correção.
func DefaultPicker() Picker {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return rng.Intn
}

// MessageRenderer gera o texto de abordagem a partir de um conjunto fixo de
// templates. Função pura sobre (lead, campanha) fora do sorteio injetado:
// nenhuma chamada externa, nenhuma IA de verdade.
type MessageRenderer struct {
	pick Picker
}

func NewMessageRenderer(pick Picker) *MessageRenderer {
	if pick == nil {
		pick = DefaultPicker()
	}
	return &MessageRenderer{pick: pick}
}

// TemplateCount é o tamanho do conjunto fixo de templates.
const TemplateCount = 3

func (r *MessageRenderer) Render(lead *entity.Lead, campaign *entity.Campaign) string {
	company := fallback(lead.Company, "sua empresa")
	jobTitle := fallback(lead.JobTitle, "profissional")
	sector := fallback(lead.Sector, "tecnologia")

	templates := []string{
		fmt.Sprintf(
			"Olá %s! Vi que você trabalha na %s como %s. %s",
			lead.Name, company, jobTitle,
			fallback(campaign.OfferContext, "Tenho uma proposta interessante para você."),
		),
		fmt.Sprintf(
			"Oi %s, tudo bem? Sou especialista em %s e gostaria de apresentar uma solução que pode ajudar a %s a crescer.",
			lead.Name, campaign.Name, company,
		),
		fmt.Sprintf(
			"%s, percebi que você atua no setor de %s. %s Podemos conversar?",
			lead.Name, sector,
			fallback(campaign.OfferContext, "Tenho algo que pode interessar você."),
		),
	}

	return templates[r.pick(len(templates))]
}

func fallback(value, generic string) string {
	if strings.TrimSpace(value) == "" {
		return generic
	}
	return value
}
