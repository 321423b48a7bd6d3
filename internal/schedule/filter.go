// internal/schedule/filter.go
package schedule

import (
	"sort"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// FilterAll is the sentinel meaning "dimension inactive". An empty string is
// treated the same way so absent query params behave like "all".
const FilterAll = "all"

// Filters narrows the visible activity set. Dimensions combine with AND;
// there is no OR or NOT composition.
type Filters struct {
	Stage   string `json:"funnel_stage"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Pillar  string `json:"content_pillar"`
}

func active(v string) bool { return v != "" && v != FilterAll }

func (f Filters) Match(a model.Activity) bool {
	if active(f.Stage) && a.FunnelStage != f.Stage {
		return false
	}
	if active(f.Channel) && a.Channel != f.Channel {
		return false
	}
	if active(f.Status) && a.Status != f.Status {
		return false
	}
	if active(f.Pillar) && a.ContentPillar != f.Pillar {
		return false
	}
	return true
}

// ApplyFilters keeps the activities matching every active dimension,
// preserving their relative order.
func ApplyFilters(activities []model.Activity, f Filters) []model.Activity {
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// Options are the selectable filter values for the current period.
type Options struct {
	Channels []string `json:"channels"`
	Pillars  []string `json:"pillars"`
}

// VisibleOptions derives the channel and pillar choices from the period's
// full activity set, not the filtered one, so the dropdowns never offer a
// value with zero results in the current period.
func VisibleOptions(periodActivities []model.Activity) Options {
	channels := map[string]struct{}{}
	pillars := map[string]struct{}{}
	for _, a := range periodActivities {
		if a.Channel != "" {
			channels[a.Channel] = struct{}{}
		}
		if a.ContentPillar != "" {
			pillars[a.ContentPillar] = struct{}{}
		}
	}
	return Options{Channels: sortedKeys(channels), Pillars: sortedKeys(pillars)}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
