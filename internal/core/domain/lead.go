package domain

import "time"

// LeadStatus tracks a lead through the sales funnel.
type LeadStatus string

const (
	LeadNew         LeadStatus = "NEW"
	LeadContacted   LeadStatus = "CONTACTED"
	LeadQualified   LeadStatus = "QUALIFIED"
	LeadOpportunity LeadStatus = "OPPORTUNITY"
	LeadContract    LeadStatus = "CONTRACT"
	LeadClosedWon   LeadStatus = "CLOSED_WON"
	LeadClosedLost  LeadStatus = "CLOSED_LOST"
)

// ParseLeadStatus converts a raw string into a LeadStatus.
func ParseLeadStatus(s string) (LeadStatus, error) {
	switch LeadStatus(s) {
	case LeadNew, LeadContacted, LeadQualified, LeadOpportunity,
		LeadContract, LeadClosedWon, LeadClosedLost:
		return LeadStatus(s), nil
	}
	return "", ErrInvalidLeadStatus
}

// Lead is a prospective customer. AssignedTo holds the ID of the sales user
// responsible for it; empty means unassigned.
type Lead struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	FirstName  string     `json:"first_name" bson:"first_name"`
	LastName   string     `json:"last_name" bson:"last_name"`
	Email      string     `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Source     string     `json:"source,omitempty" bson:"source,omitempty"`
	Status     LeadStatus `json:"status" bson:"status"`
	AssignedTo string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updated_at"`
}
