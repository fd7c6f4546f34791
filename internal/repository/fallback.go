package repository

import "groupmap/pkg/planningcenter"

// fallbackGroups is the one canonical fixture used whenever the upstream
// source is unreachable, malformed, or empty. Five representative records so
// the map always has something to render. Owned here and nowhere else;
// anything needing fallback data gets it through the repository.
var fallbackGroups = []planningcenter.Group{
	{
		ID:   "fallback-1",
		Type: "Group",
		Attributes: planningcenter.Attributes{
			Name:             "Dupont Circle Dinner Club",
			Description:      "Neighbors sharing a weekly meal and conversation.",
			LocationName:     "Dupont Circle, DC",
			Schedule:         "Thursdays at 7pm",
			MembershipsCount: 12,
		},
	},
	{
		ID:   "fallback-2",
		Type: "Group",
		Attributes: planningcenter.Attributes{
			Name:             "Arlington Young Professionals",
			Description:      "Connecting people early in their careers across NoVA.",
			Schedule:         "Tuesdays at 6:30pm",
			MembershipsCount: 18,
		},
	},
	{
		ID:   "fallback-3",
		Type: "Group",
		Attributes: planningcenter.Attributes{
			Name:             "Bethesda Community Group",
			Description:      "A weekly gathering for families and individuals.",
			LocationName:     "Bethesda, MD",
			Schedule:         "Wednesdays at 7pm",
			MembershipsCount: 15,
		},
	},
	{
		ID:   "fallback-4",
		Type: "Group",
		Attributes: planningcenter.Attributes{
			Name:             "Silver Spring Women's Circle",
			Description:      "Support and friendship for women in every season.",
			LocationName:     "Silver Spring, Maryland",
			Schedule:         "Mondays at 7pm",
			MembershipsCount: 9,
		},
	},
	{
		ID:   "fallback-5",
		Type: "Group",
		Attributes: planningcenter.Attributes{
			Name:             "Capitol Hill Neighbors",
			Description:      "Open table for anyone east of the Capitol.",
			LocationName:     "DMV Area",
			MembershipsCount: 7,
		},
	},
}

// FallbackGroups returns a fresh copy of the canonical fixture so callers
// can never mutate the original.
func FallbackGroups() []planningcenter.Group {
	out := make([]planningcenter.Group, len(fallbackGroups))
	copy(out, fallbackGroups)
	return out
}
