package spanscore

import (
	"fmt"
	"strings"
)

// Scheme selects the legality rules used to turn labels into spans.
type Scheme int

const (
	// BILOU uses explicit closers: L ends a multi-token span, U is a
	// single-token span.
	BILOU Scheme = iota
	// BIO has no closer; spans end at O, at the next B, or at the end of
	// the block.
	BIO
)

func (s Scheme) String() string {
	switch s {
	case BILOU:
		return "BILOU"
	case BIO:
		return "BIO"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme parses a scheme name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToUpper(name) {
	case "BILOU":
		return BILOU, nil
	case "BIO":
		return BIO, nil
	}
	return 0, fmt.Errorf("%w: unknown scheme %q (available: BILOU, BIO)", ErrConfig, name)
}
