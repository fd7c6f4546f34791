package models

type GroupType string

const (
	GroupTypeCommunity GroupType = "community"
	GroupTypeAffinity  GroupType = "affinity"
)

// ContactForDetails is the meeting-day sentinel used when the source record
// carries no schedule text.
const ContactForDetails = "Contact for details"

// GroupRecord is the fully resolved unit passed to the presentation layer.
// Records are rebuilt from scratch on every refresh; nothing updates one in
// place after it has been published.
type GroupRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GroupType   GroupType `json:"groupType"`
	Location    Location  `json:"location"`
	MeetingDay  string    `json:"meetingDay"`
	MemberCount int       `json:"memberCount"`
	IsActive    bool      `json:"isActive"`
}
