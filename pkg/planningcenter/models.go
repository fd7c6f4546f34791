package planningcenter

// ListResponse is the top-level struct for the group listing call.
type ListResponse struct {
	Data []Group `json:"data"`
}

// Group is a single record from the data array: an opaque id plus an
// attribute bag.
type Group struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Attributes Attributes `json:"attributes"`
}

// Attributes holds the fields the system consumes. Location text can appear
// in several places depending on how the group was set up, so all of the
// location-bearing fields are decoded and tried in order downstream.
type Attributes struct {
	Name                     string `json:"name"`
	Description              string `json:"description"`
	LocationName             string `json:"location_name"`
	Location                 string `json:"location"`
	LocationTypePreference   string `json:"location_type_preference"`
	Schedule                 string `json:"schedule"`
	ContactEmail             string `json:"contact_email"`
	MembershipsCount         int    `json:"memberships_count"`
	Archived                 bool   `json:"archived"`
	UpdatedAt                string `json:"updated_at"`
	GroupType                string `json:"group_type"`
	Enrollment               string `json:"enrollment"`
	PublicChurchCenterWebURL string `json:"public_church_center_web_url"`
}
