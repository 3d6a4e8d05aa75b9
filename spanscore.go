package spanscore

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-spanscore/internal/conll"
)

// Evaluator scores a system label column against a gold label column.
// It is safe for concurrent use.
type Evaluator struct {
	decoder    *Decoder
	scheme     Scheme
	sim        Similarity
	simName    string
	goldColumn int
	sysColumn  int
	workers    int
	logger     *slog.Logger
}

// New creates an Evaluator. The label pattern and similarity name are
// validated here rather than on first use.
func New(opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.scheme != BIO && cfg.scheme != BILOU {
		return nil, fmt.Errorf("%w: unknown scheme %s", ErrConfig, cfg.scheme)
	}

	dec, err := NewDecoder(cfg.pattern)
	if err != nil {
		return nil, fmt.Errorf("label pattern: %w", err)
	}

	sim := cfg.simFunc
	if sim == nil {
		sim, err = cfg.registry.Lookup(cfg.similarity)
		if err != nil {
			return nil, err
		}
	}

	return &Evaluator{
		decoder:    dec,
		scheme:     cfg.scheme,
		sim:        sim,
		simName:    cfg.similarity,
		goldColumn: cfg.goldColumn,
		sysColumn:  cfg.sysColumn,
		workers:    cfg.workers,
		logger:     cfg.logger,
	}, nil
}

// Scheme returns the configured tagging scheme.
func (e *Evaluator) Scheme() Scheme {
	return e.scheme
}

// Similarity returns the name of the configured similarity function.
func (e *Evaluator) Similarity() string {
	return e.simName
}

// BlockScore is the alignment of one block's gold and system spans.
type BlockScore struct {
	Alignment
	Line        int
	Tokens      int
	GoldSpans   []Span
	SystemSpans []Span
}

// ScoreBlock decodes, extracts and aligns a single block. An empty block
// scores zero.
func (e *Evaluator) ScoreBlock(b Block) (BlockScore, error) {
	gold := make([]Label, 0, len(b.Lines))
	sys := make([]Label, 0, len(b.Lines))
	for _, line := range b.Lines {
		g, s, err := e.decodeLine(line)
		if err != nil {
			return BlockScore{}, &BlockError{Line: b.Line, Err: fmt.Errorf("invalid line %q: %w", line, err)}
		}
		gold = append(gold, g)
		sys = append(sys, s)
	}

	goldSpans, err := Extract(gold, e.scheme)
	if err != nil {
		return BlockScore{}, &BlockError{Line: b.Line, Side: "gold", Labels: gold, Err: err}
	}
	sysSpans, err := Extract(sys, e.scheme)
	if err != nil {
		return BlockScore{}, &BlockError{Line: b.Line, Side: "system", Labels: sys, Err: err}
	}

	a, err := Align(goldSpans, sysSpans, e.sim)
	if err != nil {
		return BlockScore{}, &BlockError{Line: b.Line, Err: err}
	}
	e.logger.Debug("scored block",
		"line", b.Line,
		"tokens", len(b.Lines),
		"gold", len(goldSpans),
		"system", len(sysSpans),
		"matched", a.Matched,
	)

	return BlockScore{
		Alignment:   a,
		Line:        b.Line,
		Tokens:      len(b.Lines),
		GoldSpans:   goldSpans,
		SystemSpans: sysSpans,
	}, nil
}

func (e *Evaluator) decodeLine(line string) (gold, sys Label, err error) {
	fields := conll.Fields(line)

	raw, err := conll.Column(fields, e.goldColumn)
	if err != nil {
		return Label{}, Label{}, &FormatError{Reason: "gold " + err.Error()}
	}
	if gold, err = e.decoder.Decode(raw); err != nil {
		return Label{}, Label{}, err
	}

	raw, err = conll.Column(fields, e.sysColumn)
	if err != nil {
		return Label{}, Label{}, &FormatError{Reason: "system " + err.Error()}
	}
	if sys, err = e.decoder.Decode(raw); err != nil {
		return Label{}, Label{}, err
	}
	return gold, sys, nil
}

// ScoreLines scores every block in lines. Any malformed block fails the
// whole input; no partial totals are returned.
func (e *Evaluator) ScoreLines(ctx context.Context, lines []string) (Totals, error) {
	blocks := SplitBlocks(lines)

	scores, err := e.scoreBlocks(ctx, blocks)
	if err != nil {
		return Totals{}, err
	}

	acc := newAccumulator()
	for _, s := range scores {
		acc.add(s)
	}
	t := acc.totals()

	e.logger.Info("scored input",
		"blocks", t.Blocks,
		"tokens", t.Tokens,
		"similarity", e.simName,
		"scheme", e.scheme.String(),
		"matched", t.Matched,
		"gold", t.Gold,
		"system", t.System,
	)
	return t, nil
}

// scoreBlocks returns block scores in block order. With several workers the
// reported error is still the one from the earliest failing block.
func (e *Evaluator) scoreBlocks(ctx context.Context, blocks []Block) ([]BlockScore, error) {
	scores := make([]BlockScore, len(blocks))

	if e.workers <= 1 {
		for i, b := range blocks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s, err := e.ScoreBlock(b)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
		return scores, nil
	}

	errs := make([]error, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, b := range blocks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s, err := e.ScoreBlock(b)
			if err != nil {
				errs[i] = err
				return err
			}
			scores[i] = s
			return nil
		})
	}
	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// ScoreReader scores the lines read from r.
func (e *Evaluator) ScoreReader(ctx context.Context, r io.Reader) (Totals, error) {
	lines, err := conll.ReadLines(r)
	if err != nil {
		return Totals{}, err
	}
	return e.ScoreLines(ctx, lines)
}

// ScoreFile scores the file at path.
func (e *Evaluator) ScoreFile(ctx context.Context, path string) (Totals, error) {
	lines, err := conll.LoadFile(path)
	if err != nil {
		return Totals{}, fmt.Errorf("scoring %s: %w", path, err)
	}
	t, err := e.ScoreLines(ctx, lines)
	if err != nil {
		return Totals{}, fmt.Errorf("scoring %s: %w", path, err)
	}
	return t, nil
}
