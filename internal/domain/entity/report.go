package entity

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusApproved = "approved"
	ReportStatusRejected = "rejected"
)

const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

type Location struct {
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`
	Address string  `json:"address,omitempty" firestore:"address,omitempty"`
}

type MediaItem struct {
	URL      string `json:"url" firestore:"url"`
	Kind     string `json:"type" firestore:"type"` // "image" atau "video"
	PublicID string `json:"public_id,omitempty" firestore:"publicId,omitempty"`
}

// Report adalah laporan insiden yang dikirim warga
type Report struct {
	ID          string      `json:"id" firestore:"id"`
	AuthorID    string      `json:"user_id" firestore:"userId"`
	Type        string      `json:"type" firestore:"type"` // e.g. "Accidente", "Tráfico", "Infracción"
	Description string      `json:"description" firestore:"description"`
	Location    Location    `json:"location" firestore:"location"`
	Media       []MediaItem `json:"media" firestore:"media"`
	// Photos duplicates the image media items for older clients
	Photos []MediaItem `json:"photos,omitempty" firestore:"photos,omitempty"`

	Status          string `json:"status" firestore:"status"`
	WasSanctioned   bool   `json:"was_sanctioned" firestore:"wasSanctioned"`
	RejectionReason string `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`
	ModeratorID     string `json:"moderator_id,omitempty" firestore:"moderatorId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
