package sentimently

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"

	json "github.com/goccy/go-json"
)

// ErrLexiconLoad is returned when a lexicon source cannot be read or parsed.
var ErrLexiconLoad = errors.New("lexicon load failed")

// Lexicon is an immutable word to polarity table.
//
// A Lexicon produced by Merge shares the base table with its parent and keeps
// its own overlay, so merging never changes what other holders of the parent
// observe.
type Lexicon struct {
	words   map[string]int
	overlay map[string]int
}

// NewLexicon copies m into a new Lexicon. Keys are lowercased and trimmed;
// blank keys are dropped.
func NewLexicon(m map[string]int) *Lexicon {
	words := make(map[string]int, len(m))
	for w, s := range m {
		if w = normalizeWord(w); w != "" {
			words[w] = s
		}
	}
	return &Lexicon{words: words}
}

// EmptyLexicon returns a lexicon without entries.
func EmptyLexicon() *Lexicon {
	return &Lexicon{words: map[string]int{}}
}

// Lookup returns the score for an already lowercased word.
func (l *Lexicon) Lookup(word string) (int, bool) {
	if l == nil {
		return 0, false
	}
	if s, ok := l.overlay[word]; ok {
		return s, true
	}
	s, ok := l.words[word]
	return s, ok
}

// Score returns the score for word, or 0 when absent.
func (l *Lexicon) Score(word string) int {
	s, _ := l.Lookup(word)
	return s
}

// Has checks if a word exists in the lexicon.
func (l *Lexicon) Has(word string) bool {
	_, ok := l.Lookup(word)
	return ok
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	n := len(l.words)
	for w := range l.overlay {
		if _, ok := l.words[w]; !ok {
			n++
		}
	}
	return n
}

// Words returns every word in the lexicon in sorted order.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	out := slices.Collect(maps.Keys(l.words))
	for w := range l.overlay {
		if _, ok := l.words[w]; !ok {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}

// Merge returns a lexicon where overrides replace entries with the same key.
// The receiver is left untouched.
func (l *Lexicon) Merge(overrides ...WeightOverride) *Lexicon {
	if l == nil {
		l = EmptyLexicon()
	}
	if len(overrides) == 0 {
		return l
	}
	overlay := make(map[string]int, len(l.overlay)+len(overrides))
	maps.Copy(overlay, l.overlay)
	for _, o := range overrides {
		if w := normalizeWord(o.Word); w != "" {
			overlay[w] = o.Score
		}
	}
	return &Lexicon{words: l.words, overlay: overlay}
}

// flatten folds the overlay into a fresh base table.
func (l *Lexicon) flatten() *Lexicon {
	if len(l.overlay) == 0 {
		return l
	}
	words := maps.Clone(l.words)
	maps.Copy(words, l.overlay)
	return &Lexicon{words: words}
}

// A LexiconLoader supplies the raw word to score mapping for a Lexicon.
type LexiconLoader interface {
	Load() (map[string]int, error)
}

// FileLoader reads a flat JSON word list such as {"good": 3, "bad": -3}.
type FileLoader struct {
	Path string
}

// Load reads and parses the file.
func (f FileLoader) Load() (map[string]int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

// ReaderLoader parses a JSON word list from an io.Reader.
type ReaderLoader struct {
	Reader io.Reader
}

// Load reads the whole stream and parses it.
func (r ReaderLoader) Load() (map[string]int, error) {
	if r.Reader == nil {
		return nil, errors.New("nil lexicon reader")
	}
	data, err := io.ReadAll(r.Reader)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// MapLoader serves an already parsed mapping.
type MapLoader map[string]int

// Load returns the mapping itself.
func (m MapLoader) Load() (map[string]int, error) {
	return m, nil
}

// ParseLexicon decodes a flat JSON object of word to integer score.
// Entries with a null score are skipped; fractional scores and scores outside
// the int32 range are rejected.
func ParseLexicon(data []byte) (map[string]int, error) {
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}
	out := make(map[string]int, len(raw))
	for w, v := range raw {
		if v == nil {
			continue
		}
		if *v != math.Trunc(*v) {
			return nil, fmt.Errorf("word %q has non-integer score %v", w, *v)
		}
		if *v < math.MinInt32 || *v > math.MaxInt32 {
			return nil, fmt.Errorf("word %q has out of range score %v", w, *v)
		}
		out[w] = int(*v)
	}
	return out, nil
}

// LoadLexicon runs loader and builds a Lexicon from its output.
// Any failure is wrapped with ErrLexiconLoad.
func LoadLexicon(loader LexiconLoader) (*Lexicon, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: no loader", ErrLexiconLoad)
	}
	m, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLexiconLoad, err)
	}
	return NewLexicon(m), nil
}

// DefaultLexicon returns the built-in AFINN-style word list.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultWords)
}

var defaultWords = map[string]int{
	// Strong positive words
	"amazing":      4,
	"awesome":      4,
	"brilliant":    4,
	"fantastic":    4,
	"outstanding":  5,
	"superb":       5,
	"wonderful":    4,
	"breathtaking": 5,
	"thrilled":     5,
	"win":          4,
	"winner":       4,

	// Moderate positive words
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"good":        3,
	"great":       3,
	"happy":       3,
	"beautiful":   3,
	"excellent":   3,
	"perfect":     3,
	"best":        3,
	"fun":         4,
	"super":       3,
	"glad":        3,
	"excited":     3,
	"enjoy":       2,
	"like":        2,
	"nice":        3,
	"pleasant":    3,
	"better":      2,
	"cool":        1,
	"interesting": 2,
	"thank":       2,
	"thanks":      2,
	"recommend":   2,
	"success":     2,
	"successful":  3,
	"helpful":     2,
	"positive":    2,
	"hope":        2,
	"yes":         1,

	// Mild positive words
	"ok":    1,
	"okay":  1,
	"fine":  2,
	"easy":  1,
	"fair":  2,
	"clean": 2,
	"calm":  2,
	"agree": 1,
	"care":  2,
	"safe":  1,

	// Strong negative words
	"terrible":     -3,
	"awful":        -3,
	"horrible":     -3,
	"disgusting":   -3,
	"hate":         -3,
	"hated":        -3,
	"worst":        -3,
	"abysmal":      -3,
	"catastrophic": -4,
	"fraud":        -4,
	"torture":      -4,

	// Moderate negative words
	"bad":           -3,
	"sad":           -2,
	"ugly":          -3,
	"stupid":        -2,
	"poor":          -2,
	"wrong":         -2,
	"worse":         -3,
	"dislike":       -2,
	"negative":      -2,
	"annoying":      -2,
	"boring":        -3,
	"fail":          -2,
	"failure":       -2,
	"angry":         -3,
	"disappointed":  -2,
	"disappointing": -2,
	"broken":        -1,
	"problem":       -2,
	"lost":          -3,
	"cry":           -1,
	"pain":          -2,
	"no":            -1,

	// Mild negative words
	"slow":     -2,
	"hard":     -1,
	"cheap":    -1,
	"tired":    -2,
	"confused": -2,
	"doubt":    -1,
	"miss":     -2,
	"alone":    -2,
}
