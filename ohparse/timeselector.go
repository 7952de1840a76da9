package ohparse

import (
	"github.com/Telinage2/opening-hours-osm/oherr"
	"github.com/Telinage2/opening-hours-osm/ohtime"
)

// ohFullDaySelector builds the implicit time selector for the "24/7"
// shorthand and for an entirely empty day+time selector.
func ohFullDaySelector() ohtime.TimeSelector {
	return ohtime.DefaultTimeSelector()
}

// parseTimeSelector parses one or more comma-separated time spans. A comma
// continues the current rule's time selector only when what follows it
// looks like the start of another span (a clock digit or an event
// keyword); otherwise the comma belongs to the caller's rule-separator
// loop and is left unconsumed.
func (p *parser) parseTimeSelector() (ohtime.TimeSelector, error) {
	if !p.looksLikeTimeSpanStart() {
		return ohFullDaySelector(), nil
	}

	var sel ohtime.TimeSelector
	for {
		span, err := p.parseOneTimeSpan()
		if err != nil {
			return ohtime.TimeSelector{}, err
		}
		sel.Spans = append(sel.Spans, span)

		if p.isPunct(",") && p.looksLikeTimeSpanStartAt(1) {
			p.advance()
			continue
		}
		break
	}
	return sel, nil
}

func (p *parser) looksLikeTimeSpanStart() bool {
	return looksLikeTimeUnionStart(p.peek(), p.peekAt(1))
}

func (p *parser) looksLikeTimeSpanStartAt(offset int) bool {
	return looksLikeTimeUnionStart(p.peekAt(offset), p.peekAt(offset+1))
}

func looksLikeTimeUnionStart(t, t1 token) bool {
	if t.kind == tokNumber {
		return true
	}
	if t.kind == tokWord {
		_, ok := eventByName(t.text)
		return ok
	}
	if t.kind == tokPunct && t.text == "(" {
		_, ok := eventByName(t1.text)
		return ok
	}
	return false
}

func (p *parser) parseOneTimeSpan() (ohtime.TimeSpan, error) {
	start, err := p.parseOneTimeUnion()
	if err != nil {
		return ohtime.TimeSpan{}, err
	}

	span := ohtime.TimeSpan{Start: start}

	switch {
	case p.isPunct("-"):
		p.advance()
		end, err := p.parseOneTimeUnion()
		if err != nil {
			return ohtime.TimeSpan{}, err
		}
		span.End = end
		span.HasEnd = true
	case p.isPunct("+"):
		p.advance()
		span.HasEnd = true
		span.OpenEnd = true
	default:
		if !start.IsFixed() && start.String() == string(ohtime.EVENT_DUSK) {
			return ohtime.TimeSpan{}, oherr.New("dusk used as a point in time requires a range or open end")
		}
	}

	if p.isPunct("/") {
		p.advance()
		dur, err := p.parseDurationHM()
		if err != nil {
			return ohtime.TimeSpan{}, err
		}
		span.Repeats = &dur
	}

	return span, nil
}

func (p *parser) parseOneTimeUnion() (ohtime.TimeUnion, error) {
	t := p.peek()

	// Either "(event±HH:MM)" with the whole thing parenthesized, or a bare
	// "event" optionally followed by "(±HH:MM)" (spec.md §4.1's DSL note).
	if t.kind == tokPunct && t.text == "(" {
		p.advance()
		eventTok := p.peek()
		event, ok := eventByName(eventTok.text)
		if !ok {
			return ohtime.TimeUnion{}, oherr.Newf("expected event name inside parentheses, got %q", eventTok.text)
		}
		p.advance()
		offset, err := p.parseSignedOffsetMinutes()
		if err != nil {
			return ohtime.TimeUnion{}, err
		}
		if err := p.expectPunct(")"); err != nil {
			return ohtime.TimeUnion{}, err
		}
		return ohtime.Variable(ohtime.VariableTime{Event: event, OffsetMinutes: offset}), nil
	}

	if t.kind == tokWord {
		event, ok := eventByName(t.text)
		if !ok {
			return ohtime.TimeUnion{}, oherr.Newf("expected time or event, got %q", t.text)
		}
		p.advance()

		offset := 0
		if p.isPunct("(") {
			p.advance()
			var err error
			offset, err = p.parseSignedOffsetMinutes()
			if err != nil {
				return ohtime.TimeUnion{}, err
			}
			if err := p.expectPunct(")"); err != nil {
				return ohtime.TimeUnion{}, err
			}
		}
		return ohtime.Variable(ohtime.VariableTime{Event: event, OffsetMinutes: offset}), nil
	}

	hh, mm, err := p.parseHourMinute()
	if err != nil {
		return ohtime.TimeUnion{}, err
	}
	et, err := ohtime.New(hh, mm)
	if err != nil {
		return ohtime.TimeUnion{}, oherr.Newf("invalid time %02d:%02d: %v", hh, mm, err)
	}
	return ohtime.Fixed(et), nil
}

func (p *parser) parseSignedOffsetMinutes() (int, error) {
	sign := 1
	if p.isPunct("-") {
		p.advance()
		sign = -1
	} else if p.isPunct("+") {
		p.advance()
	}
	hh, mm, err := p.parseHourMinute()
	if err != nil {
		return 0, err
	}
	return sign * (hh*60 + mm), nil
}

// parseHourMinute consumes "HH:MM" or a bare "HH" (defaulting minutes to 0).
func (p *parser) parseHourMinute() (int, int, error) {
	hh, err := p.expectNumber()
	if err != nil {
		return 0, 0, err
	}
	if !p.isPunct(":") {
		return hh, 0, nil
	}
	p.advance()
	mm, err := p.expectNumber()
	if err != nil {
		return 0, 0, err
	}
	return hh, mm, nil
}

func (p *parser) parseDurationHM() (ohtime.Duration, error) {
	hh, mm, err := p.parseHourMinute()
	if err != nil {
		return ohtime.Duration{}, err
	}
	if hh*60+mm <= 0 {
		return ohtime.Duration{}, oherr.New("repeat interval must be positive")
	}
	return ohtime.NewDuration(hh, mm), nil
}
