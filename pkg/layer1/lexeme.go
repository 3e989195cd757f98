// Package layer1 implements lexical tokenization: scanning raw text
// into lexemes (numbers, vector literals, quoted identifiers, commas,
// words), resolving words against a vocabulary, and expanding
// multi-word ambiguity into parallel hypotheses.
package layer1

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/go-latn/latn/pkg/stream"
)

type lexemeKind int

const (
	lexWord lexemeKind = iota
	lexNumber
	lexVectorLiteral
	lexQuoted
	lexComma
)

type lexeme struct {
	kind lexemeKind
	text string     // raw/normalized word text, decimal text, or rendered literal
	nums [3]float64 // populated for lexVectorLiteral
	rng  stream.TextRange
}

// scanLexemes performs a single left-to-right rune walk, dispatching on
// trigger characters: '[' starts a vector literal, '\'' a quoted
// identifier, ',' a comma, a digit (or sign immediately followed by a
// digit) a number, and a letter a word run. Anything else (whitespace,
// stray punctuation) is skipped.
func scanLexemes(text string) []lexeme {
	var out []lexeme
	i := 0
	n := len(text)

	for i < n {
		c := text[i]
		switch {
		case c == '[':
			if lx, next, ok := scanVectorLiteral(text, i); ok {
				out = append(out, lx)
				i = next
				continue
			}
			i++
		case c == '\'':
			if lx, next, ok := scanQuoted(text, i); ok {
				out = append(out, lx)
				i = next
				continue
			}
			i++
		case c == ',':
			out = append(out, lexeme{kind: lexComma, text: ",", rng: stream.TextRange{Start: i, End: i + 1}})
			i++
		case isNumberStart(text, i):
			lx, next := scanNumber(text, i)
			out = append(out, lx)
			i = next
		case unicode.IsLetter(rune(c)):
			lx, next := scanWord(text, i)
			out = append(out, lx)
			i = next
		default:
			i++
		}
	}
	return out
}

func isNumberStart(text string, i int) bool {
	c := text[i]
	if c >= '0' && c <= '9' {
		return true
	}
	if (c == '-' || c == '+') && i+1 < len(text) {
		next := text[i+1]
		return next >= '0' && next <= '9'
	}
	return false
}

func scanNumber(text string, start int) (lexeme, int) {
	i := start
	if text[i] == '-' || text[i] == '+' {
		i++
	}
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
	}
	return lexeme{kind: lexNumber, text: text[start:i], rng: stream.TextRange{Start: start, End: i}}, i
}

func scanWord(text string, start int) (lexeme, int) {
	i := start
	for i < len(text) {
		c := rune(text[i])
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '\'' || c == '-' {
			i++
			continue
		}
		break
	}
	return lexeme{kind: lexWord, text: text[start:i], rng: stream.TextRange{Start: start, End: i}}, i
}

func scanQuoted(text string, start int) (lexeme, int, bool) {
	end := strings.IndexByte(text[start+1:], '\'')
	if end == -1 {
		return lexeme{}, 0, false
	}
	end += start + 1
	return lexeme{kind: lexQuoted, text: text[start+1 : end], rng: stream.TextRange{Start: start, End: end + 1}}, end + 1, true
}

// scanVectorLiteral parses "[x, y, z]" with no nesting: scan to the
// first ']', split the interior on commas, trim whitespace, and parse
// each component as a decimal (optionally signed, optionally
// fractional) literal.
func scanVectorLiteral(text string, start int) (lexeme, int, bool) {
	end := strings.IndexByte(text[start+1:], ']')
	if end == -1 {
		return lexeme{}, 0, false
	}
	end += start + 1
	inner := text[start+1 : end]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return lexeme{}, 0, false
	}
	var nums [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return lexeme{}, 0, false
		}
		nums[i] = v
	}
	return lexeme{
		kind: lexVectorLiteral,
		text: text[start : end+1],
		nums: nums,
		rng:  stream.TextRange{Start: start, End: end + 1},
	}, end + 1, true
}
