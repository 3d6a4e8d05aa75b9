package spanscore

import (
	"fmt"
	"slices"
)

// Extract decodes a block's label sequence into its set of typed spans,
// sorted by position. Sequences that break the scheme's rules fail with a
// *SequenceError; nothing is repaired.
func Extract(labels []Label, scheme Scheme) ([]Span, error) {
	var (
		spans    []Span
		open     = -1
		openType string
	)

	closeAt := func(end int) {
		spans = append(spans, Span{Start: open, End: end, Type: openType})
		open, openType = -1, ""
	}

	for i, l := range labels {
		switch l.Action {
		case Begin:
			if open >= 0 {
				if scheme == BILOU {
					return nil, &SequenceError{Index: i, Action: l.Action, Reason: "adjacent span without closer"}
				}
				closeAt(i)
			}
			open, openType = i, l.Type

		case Inside:
			if open < 0 {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: "no open span"}
			}
			if l.Type != openType {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: typeMismatch(l.Type, openType)}
			}

		case Last:
			if scheme == BIO {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: "not allowed in BIO mode"}
			}
			if open < 0 {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: "no open span"}
			}
			if l.Type != openType {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: typeMismatch(l.Type, openType)}
			}
			closeAt(i + 1)

		case Outside:
			if open >= 0 {
				if scheme == BILOU {
					return nil, &SequenceError{Index: i, Action: l.Action, Reason: "open span without closer"}
				}
				closeAt(i)
			}

		case Unit:
			if scheme == BIO {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: "not allowed in BIO mode"}
			}
			if open >= 0 {
				return nil, &SequenceError{Index: i, Action: l.Action, Reason: "open span without closer"}
			}
			spans = append(spans, Span{Start: i, End: i + 1, Type: l.Type})

		default:
			return nil, &SequenceError{Index: i, Action: l.Action, Reason: "unknown action"}
		}
	}

	if open >= 0 {
		if scheme == BILOU {
			return nil, &SequenceError{Index: len(labels), Reason: "unclosed segment"}
		}
		closeAt(len(labels))
	}

	return spanSet(spans), nil
}

func typeMismatch(got, open string) string {
	return fmt.Sprintf("incoherent type %q for span of type %q", got, open)
}

// Encode writes spans back out as an n-token label sequence under scheme.
// Spans must lie within [0, n) and must not overlap.
func Encode(spans []Span, n int, scheme Scheme) ([]Label, error) {
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = Label{Action: Outside}
	}

	prevEnd := 0
	for _, s := range spanSet(slices.Clone(spans)) {
		if s.Start < prevEnd || s.End <= s.Start || s.End > n {
			return nil, fmt.Errorf("%w: span %s cannot be encoded in %d tokens after position %d", ErrSequence, s, n, prevEnd)
		}

		if scheme == BILOU && s.Len() == 1 {
			labels[s.Start] = Label{Action: Unit, Type: s.Type}
		} else {
			labels[s.Start] = Label{Action: Begin, Type: s.Type}
			for i := s.Start + 1; i < s.End; i++ {
				labels[i] = Label{Action: Inside, Type: s.Type}
			}
			if scheme == BILOU {
				labels[s.End-1] = Label{Action: Last, Type: s.Type}
			}
		}
		prevEnd = s.End
	}

	return labels, nil
}
