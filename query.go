package openinghours

import (
	"time"

	"github.com/Telinage2/opening-hours-osm/ohcal"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/dustin/go-humanize"
)

// State returns the kind in effect at t, by taking the first range a
// one-minute IterRange query produces; CLOSED if that query is empty
// (spec.md §4.8).
func (oh *OpeningHours) State(t time.Time) ohrule.RuleKind {
	it := oh.IterRange(t, t.Add(time.Minute))
	r, ok := it.Next()
	if !ok {
		return ohrule.KindClosed
	}
	return r.Kind
}

func (oh *OpeningHours) IsOpen(t time.Time) bool    { return oh.State(t) == ohrule.KindOpen }
func (oh *OpeningHours) IsClosed(t time.Time) bool  { return oh.State(t) == ohrule.KindClosed }
func (oh *OpeningHours) IsUnknown(t time.Time) bool { return oh.State(t) == ohrule.KindUnknown }

// NextChange returns the end of the first range an IterFrom(t) query
// produces, or ok=false if that end reaches DateEnd - meaning nothing
// about the state is expected to change within the engine's modeled
// range (spec.md §4.8).
func (oh *OpeningHours) NextChange(t time.Time) (time.Time, bool) {
	it := oh.IterFrom(t)
	r, ok := it.Next()
	if !ok {
		return time.Time{}, false
	}
	if !r.End.Before(ohcal.DateEnd) {
		return time.Time{}, false
	}
	return r.End, true
}

// Humanize renders t's state as a short human phrase, e.g. "open" or
// "closed (holiday)" when the matching rule carries a comment.
func (oh *OpeningHours) Humanize(t time.Time) string {
	it := oh.IterRange(t, t.Add(time.Minute))
	r, ok := it.Next()
	if !ok {
		return string(ohrule.KindClosed)
	}
	if len(r.Comments) == 0 {
		return string(r.Kind)
	}
	return string(r.Kind) + " (" + r.Comments[0] + ")"
}

// NextChangeHumanized renders NextChange(t) as a relative phrase via
// go-humanize (e.g. "3 hours from now"), or "" if there is none.
func (oh *OpeningHours) NextChangeHumanized(t time.Time) string {
	next, ok := oh.NextChange(t)
	if !ok {
		return ""
	}
	return humanize.Time(next)
}
