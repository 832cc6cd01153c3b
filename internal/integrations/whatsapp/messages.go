package whatsapp

import "fmt"

// Messages sent to patients. The product speaks Portuguese.

// ConfirmMessage is the confirmation text for an appointment on the given
// date (DD/MM/YYYY) and time (HH:MM)
func ConfirmMessage(patientName, date, timeOfDay string) string {
	return fmt.Sprintf("Olá %s, confirmando sua consulta para o dia %s às %s. Aguardamos você!",
		patientName, date, timeOfDay)
}

// CancelMessage is the cancellation notice
func CancelMessage(patientName, date, timeOfDay string) string {
	return fmt.Sprintf("Olá %s, sua consulta do dia %s às %s foi cancelada. Entre em contato se precisar de algo.",
		patientName, date, timeOfDay)
}

// RescheduleMessage asks the patient to pick a new slot via the public
// booking page
func RescheduleMessage(patientName, publicURL string) string {
	return fmt.Sprintf("Olá %s, precisamos remarcar sua consulta. Por favor, acesse este link para escolher um novo horário: %s",
		patientName, publicURL)
}
