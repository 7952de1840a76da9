package ohrule

import "strings"

// OpeningHoursExpression is a full parsed value: an ordered sequence of
// rules, each joined to its predecessor by an operator.
type OpeningHoursExpression struct {
	Rules []RuleSequence
}

// IsConstant reports whether this expression evaluates to the same state
// at every moment, and if so, which one.
//
// An empty list is vacuously CLOSED (spec.md §4.1's default). Otherwise
// the last rule must be individually constant (empty day-selector,
// 00:00-24:00 time-selector). If it is the only rule, or it is joined by
// NORMAL or ADDITIONAL, it covers every moment of every day and overrides
// everything before it, so its kind is the expression's state. If it is
// joined by FALLBACK, the list is walked from the end, collapsing the
// trailing run of constant rules of that same kind; the scan stops at the
// first non-constant rule or the first kind change, and the expression is
// constant only if that point is the very start of the list.
func (e OpeningHoursExpression) IsConstant() (RuleKind, bool) {
	if len(e.Rules) == 0 {
		return KindClosed, true
	}

	last := e.Rules[len(e.Rules)-1]
	if !last.IsConstant() {
		return "", false
	}
	kind := last.Kind
	if len(e.Rules) == 1 || last.Operator != OperatorFallback {
		return kind, true
	}

	i := len(e.Rules) - 2
	for i >= 0 {
		if !e.Rules[i].IsConstant() || e.Rules[i].Kind != kind {
			break
		}
		i--
	}

	if i < 0 {
		return kind, true
	}
	return "", false
}

// String joins every rule's own String() with its operator's separator.
func (e OpeningHoursExpression) String() string {
	var b strings.Builder
	for i, rule := range e.Rules {
		if i > 0 {
			b.WriteString(rule.Operator.Separator())
		}
		b.WriteString(rule.String())
	}
	return b.String()
}
