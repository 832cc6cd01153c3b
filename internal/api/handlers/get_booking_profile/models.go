package get_booking_profile

import "github.com/psiagenda/agenda-service/internal/domain"

// ProfileResponse is the public booking page header data
type ProfileResponse struct {
	Name                        string `json:"name"`
	Specialty                   string `json:"specialty"`
	Bio                         string `json:"bio"`
	AvatarURL                   string `json:"avatarUrl"`
	SlotDurationMinutes         int    `json:"slotDuration"`
	LateArrivalToleranceMinutes int    `json:"lateArrivalTolerance"`
}

// FromSettings builds the response from the professional settings
func FromSettings(settings *domain.ProfessionalSettings) *ProfileResponse {
	return &ProfileResponse{
		Name:                        settings.Profile.Name,
		Specialty:                   settings.Profile.Specialty,
		Bio:                         settings.Profile.Bio,
		AvatarURL:                   settings.Profile.AvatarURL,
		SlotDurationMinutes:         settings.Availability.SlotDurationMinutes,
		LateArrivalToleranceMinutes: settings.Scheduling.LateArrivalToleranceMinutes,
	}
}
