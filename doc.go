// Package sentimently scores the sentiment of short phrases against an
// AFINN-style lexicon.
//
// A phrase is split into tokens, each token's integer weight is looked up in
// the lexicon, and the word before it may adjust that weight: negators
// subtract one, incrementors add one, and hybrid words that are themselves
// in the lexicon double it. Words without a weight always score zero.
//
//	s := sentimently.NewScorer()
//	res := s.Score("Cats are very stupid.")
//	fmt.Println(res.Score, res.Comparative, res.Negative)
//
// Per-call weight overrides never leak into the shared lexicon, so a Scorer
// can be used from many goroutines at once.
package sentimently
