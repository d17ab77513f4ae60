package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunnerRun(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeInput(t, inputDir, "first.txt", "Bid No: TX-2025-114\nTitle: Chromebooks for Campus A\n")
	writeInput(t, inputDir, "second.txt", "Bid No: TX-2025-115\nTitle: Monitors for Campus B\n")
	writeInput(t, inputDir, "notes.docx", "skipped by extension")

	r := &Runner{Processor: NewProcessor(nil, nil, nil), Workers: 2}
	results, stats, err := r.Run(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Matched)
	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 0, stats.LLMUsed)
	require.Len(t, results, 2)

	for _, res := range results {
		assert.Empty(t, res.Err)
		require.FileExists(t, res.OutPath)

		b, err := os.ReadFile(res.OutPath)
		require.NoError(t, err)
		var rec map[string]any
		require.NoError(t, json.Unmarshal(b, &rec))
		assert.Equal(t, filepath.Base(res.Path), rec["_source_file"])
		assert.Equal(t, false, rec["_llm_used"])
		assert.NotNil(t, rec["bid_number"])
	}

	// Output files are named after the input stem.
	assert.FileExists(t, filepath.Join(outputDir, "first.json"))
	assert.FileExists(t, filepath.Join(outputDir, "second.json"))
}

func TestRunnerRunEmptyDir(t *testing.T) {
	r := &Runner{Processor: NewProcessor(nil, nil, nil)}
	results, stats, err := r.Run(context.Background(), t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, stats.Matched)
}

func TestRunnerRunMissingInputDir(t *testing.T) {
	r := &Runner{Processor: NewProcessor(nil, nil, nil)}
	_, _, err := r.Run(context.Background(), "", t.TempDir())
	assert.Error(t, err)
}
