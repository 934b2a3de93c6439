package domain

import "time"

// ArtistStatus represents the approval status of a performer.
// Rejection deletes the record, so there is no "rejected" state.
type ArtistStatus string

const (
	ArtistPending  ArtistStatus = "pending"
	ArtistApproved ArtistStatus = "approved"
)

// Artist represents a registered performer profile
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	StageName string `json:"artist"`
	Genre     string `json:"genre,omitempty"`

	// Social handles, at least one required on registration
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`

	// Demo video: a URL or a contact handle the video is sent from
	VideoURL    string `json:"videoUrl,omitempty"`
	VideoLineID string `json:"videoLineId,omitempty"`

	LineID    string       `json:"lineId"`
	Note      string       `json:"note,omitempty"`
	Status    ArtistStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// IsApproved returns true if the artist may book slots
func (a *Artist) IsApproved() bool {
	return a.Status == ArtistApproved
}

// IsPending returns true if the artist awaits review
func (a *Artist) IsPending() bool {
	return a.Status == ArtistPending
}

// DisplayName returns the stage name, falling back to the legal name
func (a *Artist) DisplayName() string {
	if a.StageName != "" {
		return a.StageName
	}
	return a.Name
}

// HasSocialHandle returns true if any social-media handle is set
func (a *Artist) HasSocialHandle() bool {
	return a.Instagram != "" || a.TikTok != "" || a.YouTube != "" || a.Twitter != ""
}

// HasVideo returns true if a demo-video URL or video contact handle is set
func (a *Artist) HasVideo() bool {
	return a.VideoURL != "" || a.VideoLineID != ""
}

// Snapshot captures the booking-relevant fields at booking time
func (a *Artist) Snapshot() ArtistSnapshot {
	return ArtistSnapshot{
		ArtistID:   a.ID,
		Name:       a.Name,
		ArtistName: a.DisplayName(),
		Phone:      a.Phone,
		LineID:     a.LineID,
	}
}
