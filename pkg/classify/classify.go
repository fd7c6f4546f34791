// Package classify tags each group as a community group (organized around
// geography) or an affinity group (organized around shared identity or
// interest) by scanning its name and description for affinity-signal terms.
package classify

import (
	"strings"

	"groupmap/internal/models"
)

// KeywordSet is a named, versioned list of affinity-signal terms. Sets are
// plain data so they can be tested and extended independently of the
// matching algorithm.
type KeywordSet struct {
	Name    string
	Version int
	Terms   []string
}

// IdentitySignals covers demographic, identity, and life-stage terms.
var IdentitySignals = KeywordSet{
	Name:    "identity",
	Version: 1,
	Terms: []string{
		"young adult",
		"women",
		"men's",
		"singles",
		"students",
		"college",
		"moms",
		"dads",
		"seniors",
		"couples",
		"newlywed",
		"veterans",
		"retirees",
		"newcomers",
	},
}

// InterestSignals covers shared-interest and life-situation terms.
var InterestSignals = KeywordSet{
	Name:    "interest",
	Version: 1,
	Terms: []string{
		"professional",
		"career",
		"recovery",
		"grief",
		"divorce",
		"finance",
		"book club",
		"hiking",
		"outdoors",
		"artists",
		"musicians",
		"sports",
	},
}

// DefaultSets returns the keyword sets used when a caller supplies none.
func DefaultSets() []KeywordSet {
	return []KeywordSet{IdentitySignals, InterestSignals}
}

// Classify is a pure function of the record's text: if name or description
// contains any term from the given sets the group is affinity, otherwise
// community. Matching is case-insensitive substring with no stemming; the
// first hit short-circuits, there is no scoring.
func Classify(name, description string, sets ...KeywordSet) models.GroupType {
	if len(sets) == 0 {
		sets = DefaultSets()
	}
	text := strings.ToLower(name + " " + description)
	for _, set := range sets {
		for _, term := range set.Terms {
			if strings.Contains(text, term) {
				return models.GroupTypeAffinity
			}
		}
	}
	return models.GroupTypeCommunity
}
