package llm

import "fmt"

const systemPrompt = "You are a professional English dictionary and language-learning assistant. " +
	"You explain the meaning, usage, and examples of words, phrases, and expressions."

// buildPrompt creates the user prompt for a single word or phrase.
func buildPrompt(query string) string {
	return fmt.Sprintf(`Give a dictionary entry for %q.

Include:
1. The word or phrase with its correct spelling
2. A phonetic transcription (IPA)
3. Each distinct sense with its part of speech (noun, verb, adjective, adverb, phrase, idiom, ...)
4. A clear definition for every sense
5. One to three natural example sentences per sense
6. Synonyms

Output ONLY a valid JSON object matching this schema:
{
  "word": "<word or phrase>",
  "phonetic": "<IPA>",
  "senses": [
    {
      "partOfSpeech": "<part of speech>",
      "definition": "<definition>",
      "examples": ["<example sentence>"]
    }
  ],
  "synonyms": ["<synonym>"]
}`, query)
}
