package ohrule

import (
	"strings"

	"github.com/Telinage2/opening-hours-osm/ohday"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// RuleSequence is one `;`/`,`/`||`-delimited segment of an expression: a
// day-selector, a time-selector, the state it asserts, an optional
// comment, and the operator that joined it to the previous segment.
type RuleSequence struct {
	Days     ohday.DaySelector
	Times    ohtime.TimeSelector
	Kind     RuleKind
	Comment  string
	Operator RuleOperator
}

// IsConstant reports whether this rule applies identically on every day
// at every time - an empty day-selector paired with the full 00:00-24:00
// time-selector.
func (r RuleSequence) IsConstant() bool {
	return r.Days.IsEmpty() && r.Times.IsImmutableFullDay()
}

// String reconstructs a textual form of this rule from its time spans,
// kind and comment, without whitespace fidelity to whatever text
// originally produced it (spec.md's Non-goals exclude whitespace
// round-tripping). Day selectors and /repeat intervals are not written,
// so a rule that has them does not reparse to the same rule.
func (r RuleSequence) String() string {
	var b strings.Builder

	if r.Days.IsEmpty() && r.Times.IsOO24() {
		b.WriteString("24/7")
	} else {
		wroteSelector := false
		if !r.Times.IsEmpty() {
			for i, span := range r.Times.Spans {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(span.Start.String())
				if span.OpenEnd {
					b.WriteString("+")
				} else if span.HasEnd {
					b.WriteString("-")
					b.WriteString(span.End.String())
				}
			}
			wroteSelector = true
		}
		if !wroteSelector {
			b.WriteString("24/7")
		}
	}

	switch r.Kind {
	case KindClosed:
		b.WriteString(" closed")
	case KindUnknown:
		b.WriteString(" unknown")
	}

	if r.Comment != "" {
		b.WriteString(` "`)
		b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(r.Comment))
		b.WriteString(`"`)
	}

	return strings.TrimSpace(b.String())
}
