package appointment_whatsapp_link

import "github.com/psiagenda/agenda-service/internal/service/appointments/models"

// WhatsAppRequest names the action to perform
type WhatsAppRequest struct {
	Action string `json:"action"` // confirm | cancel | reschedule
}

// WhatsAppResponse carries the deep link and the resulting status
type WhatsAppResponse struct {
	URL    string `json:"url"`
	Action string `json:"action"`
	Status string `json:"status"`
}

// FromServiceResponse converts the service result into the HTTP response
func FromServiceResponse(resp *models.WhatsAppLinkResponse) *WhatsAppResponse {
	return &WhatsAppResponse{
		URL:    resp.URL,
		Action: string(resp.Action),
		Status: string(resp.Status),
	}
}
