package entity

// Stage é uma etapa do funil de leads.
type Stage string

const (
	StageBase            Stage = "base"
	StageLeadMapeado     Stage = "lead_mapeado"
	StageTentandoContato Stage = "tentando_contato"
	StageConexaoIniciada Stage = "conexao_iniciada"
	StageDesqualificado  Stage = "desqualificado"
	StageQualificado     Stage = "qualificado"
	StageReuniaoAgendada Stage = "reuniao_agendada"
)

type StageInfo struct {
	Value Stage  `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// LeadStages é o funil fixo, na ordem de exibição do Kanban.
// Configuração de deploy, não é editável em runtime.
var LeadStages = []StageInfo{
	{Value: StageBase, Label: "Base", Color: "bg-blue-500"},
	{Value: StageLeadMapeado, Label: "Lead Mapeado", Color: "bg-purple-500"},
	{Value: StageTentandoContato, Label: "Tentando Contato", Color: "bg-yellow-500"},
	{Value: StageConexaoIniciada, Label: "Conexão Iniciada", Color: "bg-cyan-500"},
	{Value: StageDesqualificado, Label: "Desqualificado", Color: "bg-red-500"},
	{Value: StageQualificado, Label: "Qualificado", Color: "bg-green-500"},
	{Value: StageReuniaoAgendada, Label: "Reunião Agendada", Color: "bg-violet-500"},
}

// EntryStage é a etapa inicial de todo lead recém-criado.
func EntryStage() Stage {
	return StageBase
}

func IsValidStage(s Stage) bool {
	for _, info := range LeadStages {
		if info.Value == s {
			return true
		}
	}
	return false
}

// StageLabel devolve o rótulo de exibição. Etapa desconhecida devolve o próprio valor.
func StageLabel(s Stage) string {
	for _, info := range LeadStages {
		if info.Value == s {
			return info.Label
		}
	}
	return string(s)
}
