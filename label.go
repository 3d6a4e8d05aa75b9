package spanscore

import (
	"fmt"
	"regexp"
)

// DefaultLabelPattern matches TYPE_ACTION tags such as "PER_B" as well as
// bare actions such as "O". It is anchored at both ends, so tags like
// "B-PER" or "LOC" do not match.
const DefaultLabelPattern = `(?:(?P<type>.*)_)?(?P<action>[BILOU])$`

const (
	actionGroup = "action"
	typeGroup   = "type"
)

// Action is the per-token tagging action.
type Action byte

// Tagging actions shared by the BIO and BILOU schemes.
const (
	Begin   Action = 'B'
	Inside  Action = 'I'
	Last    Action = 'L'
	Outside Action = 'O'
	Unit    Action = 'U'
)

func (a Action) valid() bool {
	switch a {
	case Begin, Inside, Last, Outside, Unit:
		return true
	}
	return false
}

// Label is a decoded token tag. A type group that did not take part in the
// match and one that matched the empty string both give an empty Type, so
// the two compare equal when spans are checked for type coherence.
type Label struct {
	Action Action
	Type   string
}

func (l Label) String() string {
	if l.Type == "" {
		return string(l.Action)
	}
	return l.Type + "_" + string(l.Action)
}

// Decoder turns raw tag strings into Labels using a pattern with named
// groups "action" (required) and "type" (optional). The pattern is matched
// against the start of the tag.
type Decoder struct {
	re        *regexp.Regexp
	actionIdx int
	typeIdx   int
}

// NewDecoder compiles pattern and checks that it exposes an "action" group.
func NewDecoder(pattern string) (*Decoder, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("compiling pattern %q: %v", pattern, err)}
	}

	actionIdx := re.SubexpIndex(actionGroup)
	if actionIdx < 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("pattern %q is missing group %q", pattern, actionGroup)}
	}

	return &Decoder{
		re:        re,
		actionIdx: actionIdx,
		typeIdx:   re.SubexpIndex(typeGroup),
	}, nil
}

// MustDecoder is like NewDecoder but panics on error.
func MustDecoder(pattern string) *Decoder {
	d, err := NewDecoder(pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// Pattern returns the source of the anchored pattern.
func (d *Decoder) Pattern() string {
	return d.re.String()
}

// Decode extracts the action and type of a raw tag.
func (d *Decoder) Decode(raw string) (Label, error) {
	m := d.re.FindStringSubmatchIndex(raw)
	if m == nil {
		return Label{}, &FormatError{Value: raw, Reason: "no match for label pattern"}
	}

	action := group(raw, m, d.actionIdx)
	if len(action) != 1 || !Action(action[0]).valid() {
		return Label{}, &FormatError{Value: raw, Reason: fmt.Sprintf("action %q is not one of B, I, L, O, U", action)}
	}

	l := Label{Action: Action(action[0])}
	if d.typeIdx >= 0 {
		l.Type = group(raw, m, d.typeIdx)
	}
	return l, nil
}

// group returns the text of submatch i, or "" if it did not participate.
func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}
