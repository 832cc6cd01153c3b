// Package genai wraps the Gemini text-generation API for the two assistant
// features: clinical note summaries and scheduling command interpretation.
// Failures never propagate to the caller; every path degrades to a fixed
// Portuguese message.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gapi "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/psiagenda/agenda-service/internal/domain"
)

// Client talks to Gemini. A nil inner client means no API key was configured
// and every call returns its degraded message.
type Client struct {
	client *gapi.Client
	model  string
	logger Logger
}

// NewClient creates a Gemini client. An empty apiKey is not an error: the
// client starts in degraded mode.
func NewClient(ctx context.Context, apiKey, model string, logger Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		logger.Warn("genai: no API key configured, AI features degraded")
		return &Client{model: model, logger: logger}, nil
	}

	inner, err := gapi.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create client: %w", err)
	}

	return &Client{
		client: inner,
		model:  model,
		logger: logger,
	}, nil
}

// Close releases the underlying connection
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SummarizeNotes generates a short clinical summary of the patient's session
// notes. Always returns displayable Portuguese text.
func (c *Client) SummarizeNotes(ctx context.Context, patientName string, notes []*domain.ClinicalNote) string {
	if len(notes) == 0 {
		return msgNoNotes
	}
	if c.client == nil {
		return msgNoAPIKeySummary
	}

	var notesText strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&notesText, "[Data: %s] Nota: %s\n", n.Date.Format(domain.DateFormatBR), n.Content)
	}

	prompt := fmt.Sprintf(`Atue como um assistente clínico sênior para um psicólogo.
Analise as seguintes notas de sessões do paciente %s.

Notas:
%s
Por favor, gere um resumo clínico conciso (máximo 2 parágrafos) em Português.
Foque na evolução do paciente, principais queixas recorrentes e progressos notáveis.
Use uma linguagem profissional e objetiva.`, patientName, notesText.String())

	text, err := c.generate(ctx, prompt, "")
	if err != nil {
		c.logger.Error("SummarizeNotes: generation failed: %v", err)
		return msgSummaryAPIError
	}
	if text == "" {
		return msgSummaryFailed
	}
	return text
}

// assistantAppointment is the trimmed appointment view embedded in the
// interpretation prompt
type assistantAppointment struct {
	ID      string `json:"id"`
	Patient string `json:"patient"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// InterpretCommand maps a free-form scheduling command onto one of the known
// actions and, when possible, a target appointment. Never returns an error;
// any failure yields ActionUnknown with an apology reply.
func (c *Client) InterpretCommand(ctx context.Context, message string, appointments []*domain.Appointment, now time.Time) *Interpretation {
	if c.client == nil {
		return &Interpretation{Action: ActionUnknown, Reply: msgNoAPIKeyCommand}
	}

	view := make([]assistantAppointment, 0, len(appointments))
	for _, a := range appointments {
		view = append(view, assistantAppointment{
			ID:      a.ID,
			Patient: a.PatientName,
			Date:    a.Date.Format(domain.DateFormat),
			Time:    a.Time.String(),
			Status:  string(a.Status),
		})
	}

	appsJSON, err := json.Marshal(view)
	if err != nil {
		c.logger.Error("InterpretCommand: failed to encode appointments: %v", err)
		return &Interpretation{Action: ActionUnknown, Reply: msgCommandFailed}
	}

	prompt := fmt.Sprintf(`Você é um assistente de agendamento de uma clínica de psicologia.
Hoje é: %s (Dia da semana: %s).

Lista de Agendamentos Atuais:
%s

Comando do Usuário: %q

Instruções:
1. Identifique a intenção do usuário:
   - CONFIRM (Confirmar consulta)
   - CANCEL (Cancelar consulta)
   - RESCHEDULE_LINK (Pedir para remarcar/enviar link)
   - UNKNOWN (Não entendeu ou ambíguo)
2. Identifique qual agendamento (ID) o usuário se refere baseando-se no nome do paciente e datas relativas (hoje, amanhã, dia X).
3. Responda APENAS um JSON estrito seguindo o schema abaixo.

Schema JSON esperado:
{
  "action": "CONFIRM" | "CANCEL" | "RESCHEDULE_LINK" | "UNKNOWN",
  "appointmentId": "string_id_ou_null",
  "reply": "Uma resposta curta e amigável em português confirmando a ação realizada ou pedindo esclarecimento."
}`, now.Format(domain.DateFormatBR), weekdayPT(now.Weekday()), appsJSON, message)

	text, err := c.generate(ctx, prompt, "application/json")
	if err != nil {
		c.logger.Error("InterpretCommand: generation failed: %v", err)
		return &Interpretation{Action: ActionUnknown, Reply: msgCommandFailed}
	}

	var parsed struct {
		Action        string  `json:"action"`
		AppointmentID *string `json:"appointmentId"`
		Reply         string  `json:"reply"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		c.logger.Error("InterpretCommand: failed to decode reply %q: %v", text, err)
		return &Interpretation{Action: ActionUnknown, Reply: msgCommandFailed}
	}

	result := &Interpretation{
		Action: Action(parsed.Action),
		Reply:  parsed.Reply,
	}
	if !result.Action.Valid() {
		result.Action = ActionUnknown
	}
	if parsed.AppointmentID != nil && *parsed.AppointmentID != "null" {
		result.AppointmentID = *parsed.AppointmentID
	}
	if result.Reply == "" {
		result.Reply = msgCommandFailed
	}

	return result
}

// generate runs a single-turn completion and returns the concatenated text
// parts of the first candidate
func (c *Client) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	if mimeType != "" {
		model.ResponseMIMEType = mimeType
	}

	resp, err := model.GenerateContent(ctx, gapi.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("genai: completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", nil
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(gapi.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// stripCodeFence removes a surrounding markdown code fence that some model
// versions add despite the JSON mime type
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// weekdayPT returns the Portuguese weekday name
func weekdayPT(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "domingo"
	case time.Monday:
		return "segunda-feira"
	case time.Tuesday:
		return "terça-feira"
	case time.Wednesday:
		return "quarta-feira"
	case time.Thursday:
		return "quinta-feira"
	case time.Friday:
		return "sexta-feira"
	default:
		return "sábado"
	}
}
