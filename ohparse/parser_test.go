package ohparse_test

import (
	"testing"

	"github.com/Telinage2/opening-hours-osm/ohparse"
	"github.com/Telinage2/opening-hours-osm/ohrule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainTimeRange(t *testing.T) {
	expr, err := ohparse.Parse("10:00-18:00")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	rule := expr.Rules[0]
	assert.True(t, rule.Days.IsEmpty())
	require.Len(t, rule.Times.Spans, 1)
	assert.Equal(t, "10:00", rule.Times.Spans[0].Start.String())
	assert.Equal(t, "18:00", rule.Times.Spans[0].End.String())
	assert.Equal(t, ohrule.KindOpen, rule.Kind)
}

func TestParseTwoRulesJoinedByNormal(t *testing.T) {
	expr, err := ohparse.Parse("Tu-Su 09:30-18:00; Th 09:30-21:45")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 2)
	assert.Equal(t, ohrule.OperatorNormal, expr.Rules[1].Operator)
	require.Len(t, expr.Rules[0].Days.Weekdays, 1)
	require.Len(t, expr.Rules[1].Days.Weekdays, 1)
}

func TestParseCommaContinuesTimeSelectorWithinOneDaySelector(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Su 00:00-06:00, 23:00-00:00")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	rule := expr.Rules[0]
	require.Len(t, rule.Days.Weekdays, 1)
	require.Len(t, rule.Times.Spans, 2)
	assert.Equal(t, "00:00", rule.Times.Spans[0].Start.String())
	assert.Equal(t, "06:00", rule.Times.Spans[0].End.String())
	assert.Equal(t, "23:00", rule.Times.Spans[1].Start.String())
	assert.Equal(t, "00:00", rule.Times.Spans[1].End.String())
}

func TestParseCommaStartsNewAdditionalRuleWhenNotATimeSpan(t *testing.T) {
	expr, err := ohparse.Parse("Mo 10:00-12:00, Tu 14:00-16:00")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 2)
	assert.Equal(t, ohrule.OperatorAdditional, expr.Rules[1].Operator)
}

func TestParseFeb29ToMar15(t *testing.T) {
	expr, err := ohparse.Parse("Feb29-Mar15 off")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	assert.Equal(t, ohrule.KindClosed, expr.Rules[0].Kind)
	require.Len(t, expr.Rules[0].Days.Monthdays, 1)
}

func TestParseYearShorthandSkipsToTimeSelector(t *testing.T) {
	expr, err := ohparse.Parse("2020:10:00-12:00; PH off")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 2)

	first := expr.Rules[0]
	require.Len(t, first.Days.Years, 1)
	assert.Empty(t, first.Days.Monthdays)
	require.Len(t, first.Times.Spans, 1)

	second := expr.Rules[1]
	assert.Equal(t, ohrule.KindClosed, second.Kind)
	require.Len(t, second.Days.Weekdays, 1)
}

func TestParseSteppedYearRange(t *testing.T) {
	expr, err := ohparse.Parse("2000-3000/21")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	require.Len(t, expr.Rules[0].Days.Years, 1)
	assert.True(t, expr.Rules[0].Times.IsImmutableFullDay())
}

func TestParseOpenEndedMonthday(t *testing.T) {
	expr, err := ohparse.Parse("May2+")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	require.Len(t, expr.Rules[0].Days.Monthdays, 1)
}

func TestParseAlwaysOpenShorthand(t *testing.T) {
	expr, err := ohparse.Parse("24/7")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	kind, constant := expr.IsConstant()
	assert.True(t, constant)
	assert.Equal(t, ohrule.KindOpen, kind)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := ohparse.Parse("   ")
	assert.Error(t, err)
}

func TestParseRejectsStrayTrailingSeparator(t *testing.T) {
	_, err := ohparse.Parse("Mo 10:00-12:00;")
	assert.Error(t, err)
}

func TestParseRejectsUnterminatedComment(t *testing.T) {
	_, err := ohparse.Parse(`Mo 10:00-12:00 "unterminated`)
	assert.Error(t, err)
}

func TestParseCommentIsCaptured(t *testing.T) {
	expr, err := ohparse.Parse(`Mo-Fr 08:00-16:00 unknown "call ahead"`)
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	assert.Equal(t, ohrule.KindUnknown, expr.Rules[0].Kind)
	assert.Equal(t, "call ahead", expr.Rules[0].Comment)
}

func TestParseFallbackOperator(t *testing.T) {
	expr, err := ohparse.Parse(`Mo-Fr 08:00-16:00 || "by appointment"`)
	require.NoError(t, err)
	require.Len(t, expr.Rules, 2)
	assert.Equal(t, ohrule.OperatorFallback, expr.Rules[1].Operator)
}

func TestParseSunsetEventWithOffset(t *testing.T) {
	expr, err := ohparse.Parse("Mo-Su (sunset-00:30)-(sunset+02:00)")
	require.NoError(t, err)
	require.Len(t, expr.Rules, 1)
	require.Len(t, expr.Rules[0].Times.Spans, 1)
	span := expr.Rules[0].Times.Spans[0]
	assert.False(t, span.Start.IsFixed())
}
