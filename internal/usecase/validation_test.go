package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelmv2/funil-sdr/internal/entity"
)

func TestCanTransitionLeadMapeadoRequiresCompanyAndJobTitle(t *testing.T) {
	lead := &entity.Lead{Name: "Ana", Stage: entity.StageBase}

	allowed, reason := CanTransition(lead, entity.StageLeadMapeado)

	assert.False(t, allowed)
	assert.Contains(t, reason, "Empresa")
	assert.Contains(t, reason, "Cargo")
}

func TestCanTransitionLeadMapeadoMissingOnlyJobTitle(t *testing.T) {
	lead := &entity.Lead{Name: "Ana", Company: "Acme", Stage: entity.StageBase}

	allowed, reason := CanTransition(lead, entity.StageLeadMapeado)

	assert.False(t, allowed)
	assert.NotContains(t, reason, "Empresa")
	assert.Contains(t, reason, "Cargo")
}

func TestCanTransitionLeadMapeadoBlankFieldsCountAsMissing(t *testing.T) {
	lead := &entity.Lead{Name: "Ana", Company: "   ", JobTitle: "\t", Stage: entity.StageBase}

	allowed, _ := CanTransition(lead, entity.StageLeadMapeado)

	assert.False(t, allowed)
}

func TestCanTransitionLeadMapeadoWithCompleteFields(t *testing.T) {
	lead := &entity.Lead{Name: "Ana", Company: "Acme", JobTitle: "CTO", Stage: entity.StageBase}

	allowed, reason := CanTransition(lead, entity.StageLeadMapeado)

	assert.True(t, allowed)
	assert.Empty(t, reason)
}

func TestCanTransitionOtherStagesAreUnconditional(t *testing.T) {
	// Lead sem empresa e sem cargo pode ir para qualquer etapa sem regra,
	// inclusive para trás.
	lead := &entity.Lead{Name: "Ana", Stage: entity.StageQualificado}

	for _, stage := range []entity.Stage{
		entity.StageBase,
		entity.StageTentandoContato,
		entity.StageConexaoIniciada,
		entity.StageDesqualificado,
		entity.StageQualificado,
		entity.StageReuniaoAgendada,
	} {
		allowed, _ := CanTransition(lead, stage)
		assert.True(t, allowed, "etapa %s deveria ser liberada", stage)
	}
}
