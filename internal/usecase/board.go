package usecase

import (
	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

// BoardColumn é uma coluna do Kanban: a etapa e os leads que estão nela.
type BoardColumn struct {
	Stage entity.StageInfo `json:"stage"`
	Leads []*entity.Lead   `json:"leads"`
}

// GroupLeadsByStage projeta a coleção de leads nas colunas do funil, na ordem
// fixa das etapas. Projeção pura de leitura: recalculada a cada chamada, a
// ordem dos leads dentro da coluna segue a ordem da coleção recebida
// (tipicamente mais recentes primeiro).
func GroupLeadsByStage(leads []*entity.Lead) []BoardColumn {
	columns := make([]BoardColumn, 0, len(entity.LeadStages))

	for _, stage := range entity.LeadStages {
		column := BoardColumn{Stage: stage, Leads: []*entity.Lead{}}
		for _, lead := range leads {
			if lead.Stage == stage.Value {
				column.Leads = append(column.Leads, lead)
			}
		}
		columns = append(columns, column)
	}

	return columns
}
