package ohparse

import (
	"strconv"
	"strings"

	"github.com/Telinage2/opening-hours-osm/oherr"
	"github.com/Telinage2/opening-hours-osm/ohrule"
)

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[i]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isPunct(s string) bool {
	t := p.peek()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) isWord(s string) bool {
	t := p.peek()
	return t.kind == tokWord && strings.EqualFold(t.text, s)
}

func (p *parser) expectPunct(s string) error {
	if !p.isPunct(s) {
		return oherr.Newf("expected %q, got %q", s, p.peek().text)
	}
	p.advance()
	return nil
}

func (p *parser) expectNumber() (int, error) {
	t := p.peek()
	if t.kind != tokNumber {
		return 0, oherr.Newf("expected number, got %q", t.text)
	}
	p.advance()
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, oherr.Newf("invalid number %q", t.text)
	}
	return n, nil
}

// Parse turns opening_hours source text into an OpeningHoursExpression,
// rejecting any syntactic or semantic problem as an *oherr.OsmParsingException
// (spec.md §4.1, §7).
func Parse(input string) (*ohrule.OpeningHoursExpression, error) {
	if strings.TrimSpace(input) == "" {
		return nil, oherr.New("empty opening_hours string")
	}

	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, oherr.Newf("unexpected trailing input at %q", p.peek().text)
	}
	return expr, nil
}

func (p *parser) parseExpression() (*ohrule.OpeningHoursExpression, error) {
	var rules []ohrule.RuleSequence
	operator := ohrule.OperatorNormal

	for {
		rule, err := p.parseRuleSequence(operator)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)

		nextOp, ok := p.trySeparator()
		if !ok {
			break
		}
		if p.peek().kind == tokEOF {
			return nil, oherr.New("stray trailing separator")
		}
		operator = nextOp
	}

	return &ohrule.OpeningHoursExpression{Rules: rules}, nil
}

// trySeparator consumes a top-level rule separator (";", ",", "||") and
// reports the operator it denotes. It must only be called between two
// full rule sequences, never from inside time-span parsing, where a
// comma instead continues the current rule's time selector.
func (p *parser) trySeparator() (ohrule.RuleOperator, bool) {
	switch {
	case p.isPunct(";"):
		p.advance()
		return ohrule.OperatorNormal, true
	case p.isPunct(","):
		p.advance()
		return ohrule.OperatorAdditional, true
	case p.isPunct("||"):
		p.advance()
		return ohrule.OperatorFallback, true
	default:
		return "", false
	}
}

func (p *parser) parseRuleSequence(operator ohrule.RuleOperator) (ohrule.RuleSequence, error) {
	rule := ohrule.RuleSequence{Operator: operator}

	if p.isAlwaysOpenShorthand() {
		p.advance() // "24"
		p.advance() // "/"
		p.advance() // "7"
		rule.Times = ohFullDaySelector()
	} else {
		days, err := p.parseDaySelector()
		if err != nil {
			return ohrule.RuleSequence{}, err
		}
		rule.Days = days

		times, err := p.parseTimeSelector()
		if err != nil {
			return ohrule.RuleSequence{}, err
		}
		rule.Times = times
	}

	kind, comment, err := p.parseModifierAndComment()
	if err != nil {
		return ohrule.RuleSequence{}, err
	}
	rule.Kind = kind
	rule.Comment = comment

	return rule, nil
}

func (p *parser) isAlwaysOpenShorthand() bool {
	return p.peek().kind == tokNumber && p.peek().text == "24" &&
		p.peekAt(1).kind == tokPunct && p.peekAt(1).text == "/" &&
		p.peekAt(2).kind == tokNumber && p.peekAt(2).text == "7"
}

func (p *parser) parseModifierAndComment() (ohrule.RuleKind, string, error) {
	kind := ohrule.KindOpen

	switch {
	case p.isWord("open"):
		p.advance()
		kind = ohrule.KindOpen
	case p.isWord("closed"), p.isWord("off"):
		p.advance()
		kind = ohrule.KindClosed
	case p.isWord("unknown"):
		p.advance()
		kind = ohrule.KindUnknown
	}

	comment := ""
	if p.peek().kind == tokString {
		comment = p.advance().text
	}

	return kind, comment, nil
}
