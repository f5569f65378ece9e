package notes

import "unicode/utf8"

// charCount counts characters, not bytes, so multi-byte transcripts report
// the same lengths the API promises.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// splitChunks partitions a transcript into contiguous slices of at most
// limit characters, dropping anything beyond maxChunks slices. A transcript
// within the limit comes back as a single chunk.
func splitChunks(transcript string, limit, maxChunks int) []string {
	runes := []rune(transcript)
	if limit <= 0 || len(runes) <= limit {
		return []string{transcript}
	}

	var chunks []string
	for start := 0; start < len(runes); start += limit {
		if len(chunks) >= maxChunks {
			break
		}
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}

// truncateChars shortens s to at most n characters.
func truncateChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
