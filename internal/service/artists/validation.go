package artists

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// trim убирает пробелы по краям всех полей анкеты
func (r RegisterRequest) trim() RegisterRequest {
	return RegisterRequest{
		Name:        strings.TrimSpace(r.Name),
		Phone:       strings.TrimSpace(r.Phone),
		StageName:   strings.TrimSpace(r.StageName),
		LineID:      strings.TrimSpace(r.LineID),
		Genre:       strings.TrimSpace(r.Genre),
		Instagram:   strings.TrimSpace(r.Instagram),
		TikTok:      strings.TrimSpace(r.TikTok),
		YouTube:     strings.TrimSpace(r.YouTube),
		Twitter:     strings.TrimSpace(r.Twitter),
		VideoURL:    strings.TrimSpace(r.VideoURL),
		VideoLineID: strings.TrimSpace(r.VideoLineID),
		Note:        strings.TrimSpace(r.Note),
	}
}

// validateRegister проверяет бизнес-минимумы анкеты (не формат полей)
func validateRegister(req RegisterRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"stage name", req.StageName},
		{"line id", req.LineID},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrRequiredField, f.name)
		}
	}

	if req.Instagram == "" && req.TikTok == "" && req.YouTube == "" && req.Twitter == "" {
		return ErrNoSocialHandle
	}

	if req.VideoURL == "" && req.VideoLineID == "" {
		return ErrNoVideo
	}

	if utf8.RuneCountInString(req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", domain.ErrValidation, domain.MaxNoteLength)
	}

	return nil
}
