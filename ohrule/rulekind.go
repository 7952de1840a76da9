// Package ohrule models rule sequences and their composition operators:
// the selector-free layer that says what state a rule asserts and how
// consecutive rules combine (spec.md §4.1, §4.4).
package ohrule

// RuleKind is the state a RuleSequence asserts when its selectors match.
type RuleKind string

const (
	KindOpen    RuleKind = "open"
	KindClosed  RuleKind = "closed"
	KindUnknown RuleKind = "unknown"
)

func (k RuleKind) IsEmpty() bool { return k == "" }

// RuleOperator is the separator joining one rule to the next, and so the
// composition semantics applied when both match the same moment
// (spec.md §4.4).
type RuleOperator string

const (
	OperatorNormal     RuleOperator = "normal"
	OperatorAdditional RuleOperator = "additional"
	OperatorFallback   RuleOperator = "fallback"
)

// Separator returns the textual token String() emits between a rule using
// this operator and its predecessor.
func (o RuleOperator) Separator() string {
	switch o {
	case OperatorAdditional:
		return ", "
	case OperatorFallback:
		return " || "
	default:
		return "; "
	}
}
