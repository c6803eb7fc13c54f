package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusAccepted JoinRequestStatus = "accepted"
	JoinRequestStatusRejected JoinRequestStatus = "rejected"
)

// Decision is the outcome chosen for a pending join request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// TerminalStatus returns the request status a decision resolves to.
func (d Decision) TerminalStatus() JoinRequestStatus {
	if d == DecisionAccept {
		return JoinRequestStatusAccepted
	}
	return JoinRequestStatusRejected
}

func (d Decision) Valid() bool {
	return d == DecisionAccept || d == DecisionReject
}

type Team struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Tag       string `json:"tag"`
	CreatedOn string `json:"created_on"`
}

// JoinRequest is a pending application by a user to join a team. Its
// status moves from pending to exactly one terminal value (accepted or
// rejected) and never transitions again.
type JoinRequest struct {
	ID            int32             `json:"id"`
	TeamID        int32             `json:"team_id"`
	RequesterName string            `json:"requester_name"`
	Role          string            `json:"role"`
	Rank          string            `json:"rank"`
	Status        JoinRequestStatus `json:"status"`
	CreatedOn     string            `json:"created_on"`
	ResolvedOn    *string           `json:"resolved_on,omitempty"`
}

const PresenceOnline = "online"

// TeamMember is the durable record that a user belongs to a team.
// A given (team_id, member_name) pair is unique.
type TeamMember struct {
	TeamID         int32     `json:"team_id"`
	MemberName     string    `json:"member_name"`
	Role           string    `json:"role"`
	Rank           string    `json:"rank"`
	PresenceStatus string    `json:"presence_status"`
	JoinedAt       time.Time `json:"joined_at"`
}
