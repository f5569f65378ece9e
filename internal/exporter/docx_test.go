package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	markdown := strings.Join([]string{
		"## Summary",
		"A short overview with **bold** words.",
		"",
		"## Key Concepts",
		"- first concept",
		"- second concept",
		"1. numbered item",
		"---",
		"plain paragraph",
	}, "\n")

	outPath := filepath.Join(t.TempDir(), "notes.docx")
	require.NoError(t, WriteMarkdown("Lecture 1", markdown, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCleanMarkdownInline(t *testing.T) {
	assert.Equal(t, "bold and code", cleanMarkdownInline("**bold** and `code`"))
	assert.Equal(t, "underline", cleanMarkdownInline("__underline__"))
}
