package service

import (
	"vialidades/internal/domain/entity"
)

const (
	// MaxReputation is the ceiling; there is no floor, a user who keeps
	// filing bad-faith reports can go arbitrarily negative
	MaxReputation = 100

	ApprovalReward   = 5
	RejectionPenalty = 1
	SanctionPenalty  = 25
)

// ApplyReputation adjusts the author's standing for a moderation
// decision. Pure; the caller persists the user.
func ApplyReputation(user *entity.User, decision Decision) *entity.User {
	switch {
	case decision.IsApproval():
		user.Reputation += ApprovalReward
		if user.Reputation > MaxReputation {
			user.Reputation = MaxReputation
		}
	case decision.IsSanction():
		user.Sanctions++
		user.Reputation -= SanctionPenalty
	default:
		user.Reputation -= RejectionPenalty
	}
	return user
}
