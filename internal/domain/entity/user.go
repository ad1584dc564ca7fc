package entity

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// SanctionLimit adalah jumlah sanksi yang memblokir pembuatan laporan baru
const SanctionLimit = 3

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Role     string `json:"role" firestore:"role"`

	// Reputation dan Sanctions hanya diubah oleh ledger reputasi
	// saat salah satu laporan user dimoderasi
	Reputation int `json:"reputation" firestore:"reputation"`
	Sanctions  int `json:"sanctions" firestore:"sanctions"`

	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsModerator melaporkan apakah user boleh memoderasi laporan
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}
