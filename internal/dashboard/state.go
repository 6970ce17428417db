// Package dashboard holds the interactive view state over a loaded digest:
// filtering, search, selection, alert dismissal and derived analytics.
package dashboard

import (
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"PoliceDigest/internal/domain"
)

// Filter narrows the cluster list by priority.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterHigh   Filter = "high"
	FilterMedium Filter = "medium"
	FilterLow    Filter = "low"
)

var filterCycle = []Filter{FilterAll, FilterHigh, FilterMedium, FilterLow}

// ParseFilter accepts all/high/medium/low; empty means all.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	if !slices.Contains(filterCycle, f) {
		return "", goerr.New("unknown priority filter", goerr.V("filter", s))
	}
	return f, nil
}

// Next cycles all -> high -> medium -> low -> all.
func (f Filter) Next() Filter {
	i := slices.Index(filterCycle, f)
	return filterCycle[(i+1)%len(filterCycle)]
}

// Label is the human-readable name, e.g. "High Priority".
func (f Filter) Label() string {
	if f == FilterAll || f == "" {
		return "All Priorities"
	}
	return cases.Title(language.English).String(string(f)) + " Priority"
}

// Matches reports whether a cluster passes the filter.
func (f Filter) Matches(p domain.Priority) bool {
	return f == FilterAll || f == "" || string(f) == string(p)
}

// ViewMode is the cluster layout.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Toggle flips between grid and list.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewList {
		return ViewGrid
	}
	return ViewList
}

// FilterClusters keeps clusters that match the priority filter and whose
// title or summary contains search, case-insensitively. Order is preserved.
func FilterClusters(clusters []domain.TopicCluster, f Filter, search string) []domain.TopicCluster {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.TopicCluster, 0, len(clusters))
	for _, c := range clusters {
		if !f.Matches(c.Priority) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Summary), needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// State is the dashboard over one snapshot. Dismissing alerts edits the
// working alert list only; the snapshot digest is never changed.
type State struct {
	Snapshot domain.Snapshot
	Filter   Filter
	Search   string
	View     ViewMode
	selected string
	alerts   []domain.Alert
}

// New starts a dashboard on snapshot with default filters.
func New(snapshot domain.Snapshot) *State {
	return &State{
		Snapshot: snapshot,
		Filter:   FilterAll,
		View:     ViewGrid,
		alerts:   slices.Clone(snapshot.Alerts),
	}
}

// Reload swaps in a new snapshot and keeps filter, search and view mode.
func (s *State) Reload(snapshot domain.Snapshot) {
	s.Snapshot = snapshot
	s.selected = ""
	s.alerts = slices.Clone(snapshot.Alerts)
}

// Clusters is the filtered cluster list.
func (s *State) Clusters() []domain.TopicCluster {
	return FilterClusters(s.Snapshot.Digest.TopicClusters, s.Filter, s.Search)
}

// Alerts is the working alert list.
func (s *State) Alerts() []domain.Alert {
	return slices.Clone(s.alerts)
}

// Cluster looks up a cluster by id regardless of the active filter.
func (s *State) Cluster(id string) (domain.TopicCluster, error) {
	for _, c := range s.Snapshot.Digest.TopicClusters {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.TopicCluster{}, goerr.Wrap(domain.ErrClusterNotFound, "find cluster", goerr.V("id", id))
}

// Select opens the detail view of a cluster.
func (s *State) Select(id string) error {
	if _, err := s.Cluster(id); err != nil {
		return err
	}
	s.selected = id
	return nil
}

// Selected returns the cluster in the detail view, if any.
func (s *State) Selected() (domain.TopicCluster, bool) {
	if s.selected == "" {
		return domain.TopicCluster{}, false
	}
	c, err := s.Cluster(s.selected)
	return c, err == nil
}

// CloseDetail leaves the detail view.
func (s *State) CloseDetail() {
	s.selected = ""
}

// Dismiss removes an alert from the working list.
func (s *State) Dismiss(id string) error {
	i := slices.IndexFunc(s.alerts, func(a domain.Alert) bool { return a.ID == id })
	if i < 0 {
		return goerr.Wrap(domain.ErrAlertNotFound, "dismiss alert", goerr.V("id", id))
	}
	s.alerts = slices.Delete(s.alerts, i, i+1)
	return nil
}

// RenderInput is what the report exporter receives: the digest and the
// alerts still on the working list.
func (s *State) RenderInput() domain.Snapshot {
	return domain.Snapshot{
		Digest:     s.Snapshot.Digest,
		Alerts:     s.Alerts(),
		Generation: s.Snapshot.Generation,
	}
}
