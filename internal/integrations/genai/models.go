package genai

// Action is the intent extracted from an assistant command
type Action string

const (
	ActionConfirm        Action = "CONFIRM"
	ActionCancel         Action = "CANCEL"
	ActionRescheduleLink Action = "RESCHEDULE_LINK"
	ActionUnknown        Action = "UNKNOWN"
)

// Valid reports whether the action is one of the known values
func (a Action) Valid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionRescheduleLink, ActionUnknown:
		return true
	}
	return false
}

// Interpretation is the structured result of an assistant command.
// AppointmentID is empty when the command does not target a specific
// appointment.
type Interpretation struct {
	Action        Action
	AppointmentID string
	Reply         string
}

// Fixed user-facing messages. AI failures never surface as errors; the
// caller always gets one of these or a generated reply.
const (
	msgNoNotes         = "Não há notas suficientes para gerar um resumo."
	msgNoAPIKeySummary = "Chave de API não configurada (Simulação: Resumo indisponível)."
	msgSummaryFailed   = "Não foi possível gerar o resumo."
	msgSummaryAPIError = "Erro ao comunicar com o serviço de IA. Verifique sua conexão ou chave de API."
	msgNoAPIKeyCommand = "IA não configurada. Por favor, configure a API KEY no ambiente."
	msgCommandFailed   = "Desculpe, não consegui processar sua solicitação no momento."
)
