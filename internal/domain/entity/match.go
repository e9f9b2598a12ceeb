package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a WingmanMatch.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
	MatchStatusExpired  MatchStatus = "expired"
)

// IsTerminal reports whether no further transition is possible.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusAccepted || s == MatchStatusDeclined || s == MatchStatusExpired
}

// ResponderStatus tracks one participant's answer to a match.
type ResponderStatus string

const (
	ResponderPending  ResponderStatus = "pending"
	ResponderAccepted ResponderStatus = "accepted"
	ResponderDeclined ResponderStatus = "declined"
)

// MatchAction is the closed set of answers a participant can give.
type MatchAction string

const (
	MatchActionAccept  MatchAction = "accept"
	MatchActionDecline MatchAction = "decline"
)

// IsValid checks if the MatchAction is a known value.
func (a MatchAction) IsValid() bool {
	return a == MatchActionAccept || a == MatchActionDecline
}

// ResponderStatus maps an action onto the per-participant state it produces.
func (a MatchAction) ResponderStatus() ResponderStatus {
	if a == MatchActionAccept {
		return ResponderAccepted
	}

	return ResponderDeclined
}

// MatchSide identifies a participant slot within a match.
type MatchSide int

const (
	SideNone MatchSide = iota
	SideA
	SideB
)

// WingmanMatch is a proposed pairing of two users.
type WingmanMatch struct {
	ID                      uuid.UUID       `json:"id"`
	UserAID                 uuid.UUID       `json:"user_a_id"` // always sorts before UserBID
	UserBID                 uuid.UUID       `json:"user_b_id"`
	Status                  MatchStatus     `json:"status"`
	ResponderAStatus        ResponderStatus `json:"responder_a_status"`
	ResponderBStatus        ResponderStatus `json:"responder_b_status"`
	ReputationSnapshotA     int             `json:"reputation_snapshot_a"`
	ReputationSnapshotB     int             `json:"reputation_snapshot_b"`
	SideEffectsDispatchedAt *time.Time      `json:"-"`
	CreatedAt               time.Time       `json:"created_at"`
	ExpiresAt               time.Time       `json:"expires_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// CanonicalPair orders two user IDs so the smaller one comes first.
func CanonicalPair(x, y uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(x[:], y[:]) <= 0 {
		return x, y
	}

	return y, x
}

// NewPendingMatch builds a pending match between requester and candidate with
// canonical participant ordering. Snapshots follow the participants into their slots.
func NewPendingMatch(requester, candidate uuid.UUID, requesterScore, candidateScore int, now time.Time, window time.Duration) *WingmanMatch {
	a, b := CanonicalPair(requester, candidate)
	snapA, snapB := requesterScore, candidateScore
	if a != requester {
		snapA, snapB = candidateScore, requesterScore
	}

	return &WingmanMatch{
		ID:                  uuid.New(),
		UserAID:             a,
		UserBID:             b,
		Status:              MatchStatusPending,
		ResponderAStatus:    ResponderPending,
		ResponderBStatus:    ResponderPending,
		ReputationSnapshotA: snapA,
		ReputationSnapshotB: snapB,
		CreatedAt:           now,
		ExpiresAt:           now.Add(window),
		UpdatedAt:           now,
	}
}

// SideOf returns which slot the user occupies, or SideNone.
func (m *WingmanMatch) SideOf(userID uuid.UUID) MatchSide {
	switch userID {
	case m.UserAID:
		return SideA
	case m.UserBID:
		return SideB
	default:
		return SideNone
	}
}

// IsParticipant reports whether the user is one of the two matched users.
func (m *WingmanMatch) IsParticipant(userID uuid.UUID) bool {
	return m.SideOf(userID) != SideNone
}

// PartnerOf returns the other participant.
func (m *WingmanMatch) PartnerOf(userID uuid.UUID) uuid.UUID {
	if userID == m.UserAID {
		return m.UserBID
	}

	return m.UserAID
}

// ResponderStatusOf returns the given side's response.
func (m *WingmanMatch) ResponderStatusOf(side MatchSide) ResponderStatus {
	if side == SideA {
		return m.ResponderAStatus
	}

	return m.ResponderBStatus
}

// IsExpiredAt reports whether the response window has closed.
func (m *WingmanMatch) IsExpiredAt(now time.Time) bool {
	return m.Status == MatchStatusPending && now.After(m.ExpiresAt)
}
