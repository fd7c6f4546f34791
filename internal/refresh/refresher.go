// Package refresh runs one atomic resolution pass: fetch raw records,
// classify and resolve them per record, distribute whatever could not be
// placed, then publish the finished set as a snapshot. A pass never touches
// a previous batch.
package refresh

import (
	"context"
	"log"

	"groupmap/internal/enrich"
	"groupmap/internal/models"
	"groupmap/internal/repository"
	"groupmap/internal/snapshot"
	"groupmap/pkg/classify"
	"groupmap/pkg/kafkaclient"
	"groupmap/pkg/locate"
	"groupmap/pkg/planningcenter"
)

// EventPublisher receives a notification after each successful snapshot
// publish. Optional; a nil publisher disables eventing.
type EventPublisher interface {
	PublishRefresh(ctx context.Context, ev kafkaclient.RefreshEvent) error
}

// item carries a raw record and its in-progress resolved form through the
// enrichment pipeline. The classify and resolve steps write disjoint fields
// so they can share a stage.
type item struct {
	Raw   planningcenter.Group
	Group models.GroupRecord
}

type Refresher struct {
	repo     *repository.Repository
	store    *snapshot.Store
	events   EventPublisher
	pipeline *enrich.Pipeline[item]
}

func NewRefresher(repo *repository.Repository, store *snapshot.Store, events EventPublisher) *Refresher {
	return &Refresher{
		repo:   repo,
		store:  store,
		events: events,
		pipeline: enrich.NewPipeline(
			enrich.NewStage(classifyStep, resolveStep),
		),
	}
}

// Refresh runs one full pass and returns the snapshot the map should now
// display. If a concurrent pass with a newer token published first, that
// newer snapshot is returned and this pass's result is discarded.
func (r *Refresher) Refresh(ctx context.Context) snapshot.Snapshot {
	token := r.store.Begin()
	result := r.repo.FetchGroups(ctx)

	in := make(chan *item)
	go func() {
		defer close(in)
		for _, raw := range result.Groups {
			in <- &item{Raw: raw, Group: baseRecord(raw)}
		}
	}()

	groups := make([]models.GroupRecord, 0, len(result.Groups))
	for it := range r.pipeline.Process(ctx, in) {
		groups = append(groups, it.Group)
	}
	groups = locate.Distribute(groups)

	snap := snapshot.Snapshot{
		Seq:         token,
		Groups:      groups,
		Source:      string(result.Source),
		LastUpdated: result.LastUpdated,
	}
	if r.store.Publish(snap) {
		r.publishEvent(ctx, snap)
	} else {
		log.Printf("Discarding stale refresh (seq=%d): a newer pass already published", token)
	}

	current, _ := r.store.Current()
	return current
}

func (r *Refresher) publishEvent(ctx context.Context, snap snapshot.Snapshot) {
	if r.events == nil {
		return
	}
	ev := kafkaclient.RefreshEvent{
		Sequence:    snap.Seq,
		GroupCount:  len(snap.Groups),
		Source:      snap.Source,
		RefreshedAt: snap.LastUpdated,
	}
	if err := r.events.PublishRefresh(ctx, ev); err != nil {
		log.Printf("Failed to publish refresh event (seq=%d): %v", snap.Seq, err)
	}
}

func classifyStep(_ context.Context, it *item) error {
	it.Group.GroupType = classify.Classify(it.Raw.Attributes.Name, it.Raw.Attributes.Description)
	return nil
}

func resolveStep(_ context.Context, it *item) error {
	it.Group.Location = locate.Resolve(locationCandidates(it.Raw.Attributes), it.Raw.Attributes.Name)
	return nil
}

// baseRecord maps the raw attribute bag onto the fields that need no
// resolution. Archived records never reach this point, so IsActive is
// simply true.
func baseRecord(raw planningcenter.Group) models.GroupRecord {
	a := raw.Attributes
	meetingDay := a.Schedule
	if meetingDay == "" {
		meetingDay = models.ContactForDetails
	}
	memberCount := a.MembershipsCount
	if memberCount < 0 {
		memberCount = 0
	}
	return models.GroupRecord{
		ID:          raw.ID,
		Name:        a.Name,
		Description: a.Description,
		MeetingDay:  meetingDay,
		MemberCount: memberCount,
		IsActive:    true,
	}
}

// locationCandidates orders the attribute fields that might carry location
// text: explicit location fields first, contact info after them, ahead of
// the resolver's name fallback. location_type_preference usually holds just
// "physical" or "virtual", which say nothing about where, but some upstream
// variants put free text there; only the free-text case is worth trying.
// Contact text is often an address, so it outranks guessing from the name.
func locationCandidates(a planningcenter.Attributes) []string {
	candidates := []string{a.LocationName, a.Location}
	switch a.LocationTypePreference {
	case "", "physical", "virtual":
	default:
		candidates = append(candidates, a.LocationTypePreference)
	}
	return append(candidates, a.ContactEmail)
}
