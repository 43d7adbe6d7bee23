package sentimently

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// stopWordFilter drops neutral function words from a token sequence.
type stopWordFilter struct {
	language Language
}

// isStopWord reports whether the stopwords list for the filter's language
// removes word.
func (f stopWordFilter) isStopWord(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, string(f.language), false)) == ""
}

// filter keeps every token that is not a stop word, plus stop words that are
// adjusters or carry a lexicon weight.
func (f stopWordFilter) filter(tokens []Token, lex *Lexicon, rules AdjusterRules) []Token {
	kept := tokens[:0:0]
	for _, tok := range tokens {
		if f.isStopWord(tok.Text) && !rules.IsAdjuster(tok.Text) && !lex.Has(tok.Word) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// FoldText performs language-specific text normalization.
func FoldText(lang Language, text string) string {
	switch lang {
	case German:
		return germanFolder.Replace(text)
	case French:
		return frenchFolder.Replace(text)
	case Spanish:
		return spanishFolder.Replace(text)
	}
	return text
}

var germanFolder = strings.NewReplacer(
	"ß", "ss",
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "AE", "Ö", "OE", "Ü", "UE",
)

var frenchFolder = strings.NewReplacer(
	"ç", "c", "Ç", "C",
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
	"À", "A", "Á", "A", "Â", "A", "Ã", "A", "Ä", "A", "Å", "A",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"È", "E", "É", "E", "Ê", "E", "Ë", "E",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"Ì", "I", "Í", "I", "Î", "I", "Ï", "I",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"Ò", "O", "Ó", "O", "Ô", "O", "Õ", "O", "Ö", "O",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"Ù", "U", "Ú", "U", "Û", "U", "Ü", "U",
	"ý", "y", "ÿ", "y", "Ý", "Y",
	"ñ", "n", "Ñ", "N",
)

var spanishFolder = strings.NewReplacer(
	"ñ", "n", "Ñ", "N",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
)
