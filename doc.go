// Package spanscore scores BIO and BILOU sequence labelling output against
// a gold standard.
//
// Input is CoNLL-like text: one token per line, whitespace-separated
// columns, blank lines between sentences. Two columns hold the gold and
// system tags. Each tag is decoded with a pattern exposing the named groups
// "action" and "type", each sentence's labels are turned into typed spans,
// and the gold and system span sets are aligned one-to-one by an optimal
// assignment under a similarity function.
//
// # Quick Start
//
//	ev, err := spanscore.New(
//	    spanscore.WithScheme(spanscore.BIO),
//	    spanscore.WithSimilarity("dice"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	totals, err := ev.ScoreFile(ctx, "dev.conll")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("P: %v\tR: %v\t F: %v\n", totals.Precision(), totals.Recall(), totals.F1())
//
// # Similarity
//
// "strict" gives credit only for identical spans and reproduces classic
// span-level precision and recall. "dice" gives partial credit to spans of
// the same type in proportion to their overlap. Further functions can be
// added with Register.
//
// # Errors
//
// A malformed tag fails with ErrFormat and an illegal label sequence with
// ErrSequence, both wrapped in a *BlockError naming the block's first line.
// Nothing is repaired and no partial totals are returned.
package spanscore
