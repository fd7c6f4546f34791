// Package repository supplies raw group records to the resolution core. It
// wraps the upstream groups client, applies eligibility filtering, and
// absorbs every source failure by substituting the canonical fallback
// fixture, so downstream code always gets a non-empty list.
package repository

import (
	"context"
	"log"
	"time"

	"groupmap/pkg/planningcenter"
)

// GroupLister is the slice of the upstream client the repository needs;
// tests supply their own.
type GroupLister interface {
	ListGroups(ctx context.Context) (*planningcenter.ListResponse, error)
}

// Policy holds the eligibility filters beyond active-status. Archived
// records are always excluded; the rest is deployment configuration because
// upstream variants disagree on what to apply. GroupTypeFilter, when set,
// keeps only records whose upstream group_type matches it.
type Policy struct {
	RequireOpenEnrollment bool
	RequirePublicURL      bool
	GroupTypeFilter       string
}

// Source labels where a fetch result came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// FetchResult is one batch of eligible raw records.
type FetchResult struct {
	Groups      []planningcenter.Group
	Source      Source
	LastUpdated time.Time
}

type Repository struct {
	client GroupLister
	policy Policy
}

func New(client GroupLister, policy Policy) *Repository {
	return &Repository{client: client, policy: policy}
}

// FetchGroups never fails: network errors, malformed payloads, and empty
// result sets all degrade to the fallback fixture. The live path filters out
// archived records and applies the configured eligibility policy.
func (r *Repository) FetchGroups(ctx context.Context) FetchResult {
	resp, err := r.client.ListGroups(ctx)
	if err != nil {
		log.Printf("Group source unavailable, serving fallback records: %v", err)
		return fallbackResult()
	}

	eligible := make([]planningcenter.Group, 0, len(resp.Data))
	var lastUpdated time.Time
	for _, g := range resp.Data {
		if !r.eligible(g) {
			continue
		}
		if t, err := time.Parse(time.RFC3339, g.Attributes.UpdatedAt); err == nil && t.After(lastUpdated) {
			lastUpdated = t
		}
		eligible = append(eligible, g)
	}

	if len(eligible) == 0 {
		log.Printf("Group source returned no eligible records, serving fallback records")
		return fallbackResult()
	}
	if lastUpdated.IsZero() {
		lastUpdated = time.Now().UTC()
	}
	return FetchResult{Groups: eligible, Source: SourceLive, LastUpdated: lastUpdated}
}

func (r *Repository) eligible(g planningcenter.Group) bool {
	a := g.Attributes
	if a.Archived {
		return false
	}
	if r.policy.RequireOpenEnrollment && a.Enrollment == "closed" {
		return false
	}
	if r.policy.RequirePublicURL && a.PublicChurchCenterWebURL == "" {
		return false
	}
	if r.policy.GroupTypeFilter != "" && a.GroupType != r.policy.GroupTypeFilter {
		return false
	}
	return true
}

func fallbackResult() FetchResult {
	return FetchResult{
		Groups:      FallbackGroups(),
		Source:      SourceFallback,
		LastUpdated: time.Now().UTC(),
	}
}
