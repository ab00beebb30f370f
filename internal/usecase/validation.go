package usecase

import (
	"fmt"
	"strings"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

// transitionRule é um predicado declarativo sobre (lead, etapa destino).
// Novas regras de bloqueio entram nesta tabela sem tocar no motor de transição.
type transitionRule struct {
	TargetStage entity.Stage
	Check       func(lead *entity.Lead) (allowed bool, reason string)
}

var transitionRules = []transitionRule{
	{
		TargetStage: entity.StageLeadMapeado,
		Check:       requireCompanyAndJobTitle,
	},
}

// CanTransition avalia as regras de negócio para mover um lead de etapa.
// Transições sem regra cadastrada são sempre permitidas, inclusive para trás.
func CanTransition(lead *entity.Lead, target entity.Stage) (bool, string) {
	for _, rule := range transitionRules {
		if rule.TargetStage != target {
			continue
		}
		if allowed, reason := rule.Check(lead); !allowed {
			return false, reason
		}
	}
	return true, ""
}

// Um lead só vira "Lead Mapeado" com empresa e cargo preenchidos.
func requireCompanyAndJobTitle(lead *entity.Lead) (bool, string) {
	var missing []string
	if !lead.HasCompany() {
		missing = append(missing, "Empresa")
	}
	if !lead.HasJobTitle() {
		missing = append(missing, "Cargo")
	}

	if len(missing) > 0 {
		return false, fmt.Sprintf(
			"para mover o lead para %s preencha: %s",
			entity.StageLabel(entity.StageLeadMapeado),
			strings.Join(missing, ", "),
		)
	}

	return true, ""
}
