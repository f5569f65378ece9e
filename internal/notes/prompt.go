package notes

import "fmt"

const generateSystemPrompt = "Produce only the requested format; concise, factual, structured."

const markdownPromptTemplate = `You are an expert study assistant.
Create clear, exam-focused notes from the transcript.

Title: %s

OUTPUT FORMAT (Markdown only):
## Summary
- 2-3 sentence overview.

## Key Concepts
- 5-10 bullet points. Each: term - short explanation.

## Mindmap Bubbles
- 5-8 bullets. Each: **Concept** — reason (importance 1-5).

## Important Details
- Facts, numbers, formulas (bullet list, each line <120 chars).

## Study Questions
- 5 questions (2 easy, 2 medium, 1 hard) - no answers.

Constraints:
- Be concise.
- Do not invent unsupported content.
- Avoid generic filler.

TRANSCRIPT START
%s
TRANSCRIPT END`

const jsonPromptTemplate = `You are an expert study assistant.
Extract structured study notes from the transcript below.
Return ONLY valid JSON.

Title: %s

Fields:
  title: string
  summary: string (2-3 sentences)
  key_concepts: array of objects {term, explanation}
  important_details: array of strings (facts, formulas, numbers)
  study_questions: array of objects {question, difficulty in ['easy','medium','hard']}
  mindmap_bubbles: array of objects {concept, reason, importance integer 1-5}
  transcript_character_count: integer

Rules:
 - Do not hallucinate content.
 - Provide exactly 5 study_questions (2 easy, 2 medium, 1 hard).
 - Keep explanations concise.

TRANSCRIPT START
%s
TRANSCRIPT END`

// buildMarkdownPrompt renders the markdown notes template. Pure templating,
// no calls.
func buildMarkdownPrompt(text, title string) string {
	return fmt.Sprintf(markdownPromptTemplate, title, text)
}

// buildJSONPrompt renders the JSON notes template. The output contract is
// stated in natural language only; the model is trusted, not constrained,
// to honor it.
func buildJSONPrompt(text, title string) string {
	return fmt.Sprintf(jsonPromptTemplate, title, text)
}
