package ohrule_test

import (
	"testing"

	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/Telinage2/opening-hours-osm/ohtime"
	"github.com/stretchr/testify/assert"
)

func fullDaySelector(kind ohrule.RuleKind, op ohrule.RuleOperator) ohrule.RuleSequence {
	return ohrule.RuleSequence{
		Times:    ohtime.DefaultTimeSelector(),
		Kind:     kind,
		Operator: op,
	}
}

func TestExpressionIsConstantEmpty(t *testing.T) {
	var expr ohrule.OpeningHoursExpression
	kind, ok := expr.IsConstant()
	assert.True(t, ok)
	assert.Equal(t, ohrule.KindClosed, kind)
}

func TestExpressionIsConstantSingleFullDayRule(t *testing.T) {
	expr := ohrule.OpeningHoursExpression{Rules: []ohrule.RuleSequence{
		fullDaySelector(ohrule.KindOpen, ohrule.OperatorNormal),
	}}
	kind, ok := expr.IsConstant()
	assert.True(t, ok)
	assert.Equal(t, ohrule.KindOpen, kind)
}

func TestExpressionIsConstantTrailingOverrideCollapses(t *testing.T) {
	expr := ohrule.OpeningHoursExpression{Rules: []ohrule.RuleSequence{
		fullDaySelector(ohrule.KindClosed, ohrule.OperatorNormal),
		fullDaySelector(ohrule.KindOpen, ohrule.OperatorNormal),
	}}
	kind, ok := expr.IsConstant()
	assert.True(t, ok)
	assert.Equal(t, ohrule.KindOpen, kind)
}

func TestExpressionIsConstantFallbackBreaksChain(t *testing.T) {
	expr := ohrule.OpeningHoursExpression{Rules: []ohrule.RuleSequence{
		fullDaySelector(ohrule.KindClosed, ohrule.OperatorNormal),
		fullDaySelector(ohrule.KindOpen, ohrule.OperatorFallback),
	}}
	_, ok := expr.IsConstant()
	assert.False(t, ok)
}

func TestUnionSortedSlicesDisjointFastPath(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ohrule.UnionSortedSlices([]int{1, 2, 3}, []int{4, 5}))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ohrule.UnionSortedSlices([]int{4, 5}, []int{1, 2, 3}))
}

func TestUnionSortedSlicesInterleaved(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ohrule.UnionSortedSlices([]int{1, 3, 5}, []int{2, 3, 4}))
}
