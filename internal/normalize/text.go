package normalize

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/heartmarshall/vocabvault-backend/internal/domain"
	"github.com/heartmarshall/vocabvault-backend/internal/provider"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*?\\})\\s*```")
	numberedRe   = regexp.MustCompile(`^(\d{1,2})[.)]\s+(.+)$`)
	bulletRe     = regexp.MustCompile(`^[-*•>]\s+(.+)$`)
	exampleRe    = regexp.MustCompile(`(?i)^(?:e\.g\.|examples?|ex\.)\s*[:.]?\s*(.*)$`)
	fieldRe      = regexp.MustCompile(`(?i)^(word|headword|phrase|phonetic|pronunciation|ipa|synonyms?|part of speech|pos)\s*:\s*(.*)$`)
	inlinePOSRe  = regexp.MustCompile(`^\(?([A-Za-z. ]{1,16}?)\)?\s*[:：]\s*(.+)$`)
)

var posLabels = map[string]string{
	"noun":         "noun",
	"n.":           "noun",
	"verb":         "verb",
	"v.":           "verb",
	"phrasal verb": "phrasal verb",
	"adjective":    "adjective",
	"adj.":         "adjective",
	"adverb":       "adverb",
	"adv.":         "adverb",
	"pronoun":      "pronoun",
	"pron.":        "pronoun",
	"preposition":  "preposition",
	"prep.":        "preposition",
	"conjunction":  "conjunction",
	"conj.":        "conjunction",
	"interjection": "interjection",
	"int.":         "interjection",
	"determiner":   "determiner",
	"exclamation":  "exclamation",
	"phrase":       "phrase",
	"idiom":        "idiom",
}

// Text parses the free-form answer of a generative provider.
func Text(r *provider.TextResult) (*domain.LookupResult, error) {
	if r == nil {
		return nil, malformed(domain.SourceSecondary, "nil text result")
	}

	text := strings.TrimSpace(r.Text)
	if text == "" {
		return nil, malformed(domain.SourceSecondary, "empty response for %q", r.Query)
	}

	if entry, ok := parseJSONEntry(text); ok {
		result := entry.toResult(r.Query)
		if !result.HasSenses() {
			return nil, malformed(domain.SourceSecondary, "json entry for %q has no senses", r.Query)
		}
		return result, nil
	}

	parsed := parseText(text)

	result := &domain.LookupResult{
		Headword: firstNonEmpty(parsed.headword, r.Query),
		Phonetic: optional(parsed.phonetic),
		Entries:  parsed.entries,
		Synonyms: dedupeSynonyms(parsed.synonyms),
		Source:   domain.SourceSecondary,
	}
	if len(result.Entries) == 0 {
		result.Entries = []domain.SenseEntry{{Definition: text, Examples: []string{}}}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// JSON entries
// ---------------------------------------------------------------------------

// jsonEntry accepts both the prompt's "senses" layout and the older
// "definitions" layout with "meaning"/"example" keys.
type jsonEntry struct {
	Word         string      `json:"word"`
	Phonetic     string      `json:"phonetic"`
	PartOfSpeech string      `json:"partOfSpeech"`
	Senses       []jsonSense `json:"senses"`
	Definitions  []jsonSense `json:"definitions"`
	Synonyms     stringList  `json:"synonyms"`
}

type jsonSense struct {
	PartOfSpeech string     `json:"partOfSpeech"`
	Definition   string     `json:"definition"`
	Meaning      string     `json:"meaning"`
	Example      string     `json:"example"`
	Examples     stringList `json:"examples"`
}

// stringList decodes a JSON string, an array of strings, or an array of
// objects carrying the text under "sentence", "text", or "example".
// A bare string is split on commas only when it is a synonyms list.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*l = stringList{single}
		}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(stringList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Sentence string `json:"sentence"`
			Text     string `json:"text"`
			Example  string `json:"example"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		out = append(out, firstNonEmpty(obj.Sentence, obj.Text, obj.Example))
	}
	*l = out
	return nil
}

// entryKeys are the fields that make a JSON object a dictionary entry rather
// than braces that happen to appear in prose.
var entryKeys = []string{"word", "senses", "definitions"}

// parseJSONEntry looks for a JSON object in a fenced block first, then in the
// outermost brace span. Objects without any of entryKeys are ignored.
func parseJSONEntry(text string) (*jsonEntry, bool) {
	var candidates []string
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	for _, c := range candidates {
		if !looksLikeEntry(c) {
			continue
		}
		var e jsonEntry
		if err := json.Unmarshal([]byte(c), &e); err == nil {
			return &e, true
		}
	}
	return nil, false
}

func looksLikeEntry(candidate string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return false
	}
	for _, k := range entryKeys {
		if _, ok := fields[k]; ok {
			return true
		}
	}
	return false
}

func (e *jsonEntry) toResult(query string) *domain.LookupResult {
	result := &domain.LookupResult{
		Headword: firstNonEmpty(strings.TrimSpace(e.Word), query),
		Phonetic: optional(e.Phonetic),
		Entries:  []domain.SenseEntry{},
		Source:   domain.SourceSecondary,
	}

	for _, s := range append(e.Senses, e.Definitions...) {
		def := strings.TrimSpace(firstNonEmpty(s.Definition, s.Meaning))
		if def == "" {
			continue
		}
		examples := append([]string{s.Example}, s.Examples...)
		result.Entries = append(result.Entries, domain.SenseEntry{
			PartOfSpeech: optional(firstNonEmpty(s.PartOfSpeech, e.PartOfSpeech)),
			Definition:   def,
			Examples:     cleanExamples(examples),
		})
	}

	result.Synonyms = dedupeSynonyms(splitSynonyms(e.Synonyms))
	return result
}

// ---------------------------------------------------------------------------
// Plain text
// ---------------------------------------------------------------------------

type textParse struct {
	headword string
	phonetic string
	synonyms []string
	entries  []domain.SenseEntry
}

// parseText splits text into senses using part-of-speech labels, numbered
// senses, bullets, and example markers. It returns no entries when none of
// those markers is present.
func parseText(text string) textParse {
	var (
		p            textParse
		pos          *string
		cur          = -1
		examplesMode bool
	)

	addSense := func(def string) {
		def = strings.TrimSpace(def)
		if def == "" {
			return
		}
		p.entries = append(p.entries, domain.SenseEntry{PartOfSpeech: pos, Definition: def, Examples: []string{}})
		cur = len(p.entries) - 1
		examplesMode = false
	}
	addExample := func(ex string) {
		if ex = trimQuotes(ex); ex != "" && cur >= 0 {
			p.entries[cur].Examples = append(p.entries[cur].Examples, ex)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := stripMarkdown(raw)
		if line == "" {
			continue
		}

		if m := fieldRe.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch strings.ToLower(m[1]) {
			case "word", "headword", "phrase":
				p.headword = value
			case "phonetic", "pronunciation", "ipa":
				p.phonetic = value
			case "synonym", "synonyms":
				p.synonyms = append(p.synonyms, splitSynonyms([]string{value})...)
			default:
				pos = posLabel(value)
				cur = -1
			}
			continue
		}

		item := line
		bullet := false
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			item, bullet = strings.TrimSpace(m[1]), true
		}

		if label, ok := posLabels[strings.ToLower(strings.TrimSuffix(strings.Trim(item, "()"), ":"))]; ok {
			pos = &label
			cur = -1
			continue
		}

		if m := exampleRe.FindStringSubmatch(item); m != nil {
			if rest := strings.TrimSpace(m[1]); rest != "" {
				addExample(rest)
			} else {
				examplesMode = cur >= 0
			}
			continue
		}

		if m := numberedRe.FindStringSubmatch(item); m != nil {
			addSense(m[2])
			continue
		}

		if m := inlinePOSRe.FindStringSubmatch(item); m != nil {
			if label, ok := posLabels[strings.ToLower(strings.TrimSpace(m[1]))]; ok {
				pos = &label
				addSense(m[2])
				continue
			}
		}

		switch {
		case cur >= 0 && (examplesMode || isQuoted(item)):
			addExample(item)
		case bullet:
			addSense(item)
		case cur >= 0:
			p.entries[cur].Definition += " " + item
		}
	}

	return p
}

func posLabel(s string) *string {
	s = strings.TrimSpace(s)
	if label, ok := posLabels[strings.ToLower(s)]; ok {
		return &label
	}
	return optional(s)
}

// stripMarkdown removes heading marks and bold/italic markers from a line.
func stripMarkdown(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "#")
	line = strings.NewReplacer("**", "", "__", "").Replace(line)
	return strings.TrimSpace(line)
}

func isQuoted(s string) bool {
	return strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "“") || strings.HasPrefix(s, "'")
}

func trimQuotes(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'“”‘’`))
}

func splitSynonyms(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '、' })...)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
