package sentimently

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLexiconOperations(t *testing.T) {
	lex := NewLexicon(map[string]int{" Good ": 3, "BAD": -3, "": 9, "meh": 0})

	if lex.Len() != 3 {
		t.Errorf("Expected 3 words, got %d", lex.Len())
	}
	if s, ok := lex.Lookup("good"); !ok || s != 3 {
		t.Errorf("Expected good=3, got %d (%v)", s, ok)
	}
	if s, ok := lex.Lookup("bad"); !ok || s != -3 {
		t.Errorf("Expected bad=-3, got %d (%v)", s, ok)
	}
	if _, ok := lex.Lookup("Good"); ok {
		t.Error("Lookup must not fold case")
	}
	if !lex.Has("meh") || lex.Score("meh") != 0 {
		t.Error("Expected neutral entry to be present with score 0")
	}
	if lex.Has("cats") || lex.Score("cats") != 0 {
		t.Error("Expected absent word to score 0")
	}
	if want := []string{"bad", "good", "meh"}; !reflect.DeepEqual(lex.Words(), want) {
		t.Errorf("Expected %v, got %v", want, lex.Words())
	}
}

func TestLexiconMerge(t *testing.T) {
	base := NewLexicon(map[string]int{"good": 3, "bad": -3})

	merged := base.Merge(
		WeightOverride{Word: "Cats", Score: 5},
		WeightOverride{Word: "good", Score: 1},
		WeightOverride{Word: "  ", Score: 7},
	)

	if merged.Score("cats") != 5 || merged.Score("good") != 1 || merged.Score("bad") != -3 {
		t.Errorf("Unexpected merged scores: cats=%d good=%d bad=%d",
			merged.Score("cats"), merged.Score("good"), merged.Score("bad"))
	}
	if merged.Len() != 3 {
		t.Errorf("Expected 3 words after merge, got %d", merged.Len())
	}
	if base.Has("cats") || base.Score("good") != 3 {
		t.Error("Merge mutated the base lexicon")
	}

	again := merged.Merge(WeightOverride{Word: "bad", Score: -1})
	if again.Score("cats") != 5 || again.Score("bad") != -1 {
		t.Error("Expected nested merge to keep earlier overlay")
	}
	if merged.Score("bad") != -3 {
		t.Error("Nested merge mutated its parent")
	}

	if base.Merge() != base {
		t.Error("Expected merge without overrides to return the receiver")
	}

	flat := again.flatten()
	if flat.Score("cats") != 5 || flat.Score("bad") != -1 || len(flat.overlay) != 0 {
		t.Error("Expected flatten to fold the overlay into the base table")
	}
}

func TestNilLexicon(t *testing.T) {
	var lex *Lexicon
	if lex.Has("good") || lex.Len() != 0 || lex.Words() != nil {
		t.Error("Expected nil lexicon to behave as empty")
	}
	if lex.Merge(WeightOverride{Word: "good", Score: 2}).Score("good") != 2 {
		t.Error("Expected merge on nil lexicon to work")
	}
}

func TestParseLexiconRange(t *testing.T) {
	if m, err := ParseLexicon([]byte(`{"max": 2147483647, "min": -2147483648}`)); err != nil || m["max"] != math.MaxInt32 || m["min"] != math.MinInt32 {
		t.Errorf("Expected int32 bounds to load, got %v / %v", m, err)
	}
	for _, data := range []string{`{"huge": 1e300}`, `{"tiny": -1e300}`, `{"over": 2147483648}`} {
		if _, err := ParseLexicon([]byte(data)); err == nil {
			t.Errorf("%s: expected out of range error", data)
		}
	}
}

func TestParseLexicon(t *testing.T) {
	tests := []struct {
		desc    string
		data    string
		want    map[string]int
		wantErr bool
	}{
		{"flat object", `{"good": 3, "bad": -3}`, map[string]int{"good": 3, "bad": -3}, false},
		{"null skipped", `{"good": 3, "cats": null}`, map[string]int{"good": 3}, false},
		{"integral float", `{"good": 3.0}`, map[string]int{"good": 3}, false},
		{"fractional", `{"good": 2.5}`, nil, true},
		{"malformed", `{"good": `, nil, true},
		{"wrong shape", `["good"]`, nil, true},
		{"empty", `{}`, map[string]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := ParseLexicon([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`{"Love": 3}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`not json`), 0600); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(FileLoader{Path: good})
	if err != nil {
		t.Fatalf("Failed to load lexicon: %v", err)
	}
	if lex.Score("love") != 3 {
		t.Errorf("Expected love=3, got %d", lex.Score("love"))
	}

	for _, loader := range []LexiconLoader{
		FileLoader{Path: bad},
		FileLoader{Path: filepath.Join(dir, "missing.json")},
		ReaderLoader{},
		nil,
	} {
		if _, err := LoadLexicon(loader); !errors.Is(err, ErrLexiconLoad) {
			t.Errorf("Expected ErrLexiconLoad for %#v, got %v", loader, err)
		}
	}

	lex, err = LoadLexicon(ReaderLoader{Reader: strings.NewReader(`{"bad": -3}`)})
	if err != nil || lex.Score("bad") != -3 {
		t.Errorf("Expected reader loader to work, got %v", err)
	}

	lex, err = LoadLexicon(MapLoader{"Good": 3})
	if err != nil || lex.Score("good") != 3 {
		t.Errorf("Expected map loader to work, got %v", err)
	}
}

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	if lex.Len() == 0 {
		t.Fatal("Expected built-in words")
	}
	for _, w := range lex.Words() {
		if w != strings.ToLower(w) {
			t.Errorf("Built-in word %q is not lowercase", w)
		}
	}
	if lex.Score("love") <= 0 || lex.Score("hate") >= 0 {
		t.Error("Unexpected polarity for built-in words")
	}
}

func BenchmarkLexiconLookup(b *testing.B) {
	lex := DefaultLexicon().Merge(WeightOverride{Word: "cats", Score: 5})
	words := []string{"good", "bad", "cats", "unknown", "excellent", "terrible"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, w := range words {
			_, _ = lex.Lookup(w)
		}
	}
}
