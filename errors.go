package spanscore

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrFormat indicates a raw tag that does not match the label pattern,
	// or a label pattern that cannot be used for decoding.
	ErrFormat = errors.New("spanscore: invalid label format")

	// ErrSequence indicates a label sequence that violates the tagging scheme.
	ErrSequence = errors.New("spanscore: invalid label sequence")

	// ErrConfig indicates an invalid configuration value, such as an unknown
	// similarity function name.
	ErrConfig = errors.New("spanscore: invalid configuration")
)

// FormatError reports a value that could not be decoded into a Label.
// Value is empty when the failure is not tied to a single tag.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Value == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid label %q: %s", e.Value, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// SequenceError reports the position of a label that is illegal under the
// selected scheme. Index is the token position within the block; it equals
// the sequence length for errors detected after the last label.
type SequenceError struct {
	Index  int
	Action Action
	Reason string
}

func (e *SequenceError) Error() string {
	if e.Action == 0 {
		return fmt.Sprintf("invalid label sequence at %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid label %q at %d: %s", string(e.Action), e.Index, e.Reason)
}

// Is reports whether target is ErrSequence.
func (e *SequenceError) Is(target error) bool {
	return target == ErrSequence
}

// BlockError attaches block context to a decoding or extraction failure.
type BlockError struct {
	// Line is the 1-based input line where the block starts.
	Line int
	// Side is "gold" or "system" for extraction failures, empty otherwise.
	Side string
	// Labels holds the decoded label sequence of Side, if any.
	Labels []Label
	Err    error
}

func (e *BlockError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid value in block starting at line %d", e.Line)
	if e.Side != "" {
		fmt.Fprintf(&b, ": invalid %s label sequence %s", e.Side, formatLabels(e.Labels))
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

func formatLabels(labels []Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%d:%s", i, l)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
