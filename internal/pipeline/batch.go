package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/osuji-k/rfp-extractor/constants"
	"github.com/osuji-k/rfp-extractor/internal/common"
	"github.com/osuji-k/rfp-extractor/internal/record"
)

// FileResult reports the outcome for one input file. Record is kept so the
// summary export can run without re-reading the output files.
type FileResult struct {
	Path    string
	OutPath string
	LLMUsed bool
	Record  record.Final
	Err     string
}

// BatchStats aggregates a batch run.
type BatchStats struct {
	Scanned   int
	Matched   int
	Succeeded int
	Failed    int
	LLMUsed   int
}

// Runner processes every matching document under an input directory and
// writes one JSON record per document. Documents are independent, so the
// run is parallel at the file level; Workers caps concurrency.
type Runner struct {
	Processor *Processor
	Workers   int
	Progress  bool
}

// Run walks inputDir, processes each .pdf/.html/.htm/.txt file, and writes
// <stem>.json into outputDir. Per-document failures are recorded and
// returned, never aborting the batch.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) ([]FileResult, BatchStats, error) {
	if strings.TrimSpace(inputDir) == "" {
		return nil, BatchStats{}, fmt.Errorf("input directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, BatchStats{}, fmt.Errorf("create output dir: %w", err)
	}

	var stats BatchStats
	var paths []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			return nil // unreadable entry: skip, keep walking
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, common.WrapError(err, "walk "+inputDir)
	}

	var bar *progressbar.ProgressBar
	if r.Progress {
		bar = progressbar.Default(int64(len(paths)), "processing documents")
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]FileResult, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res := r.processOne(gctx, path, outputDir)
			mu.Lock()
			results[i] = res
			if res.Err == "" {
				stats.Succeeded++
				if res.LLMUsed {
					stats.LLMUsed++
				}
			} else {
				stats.Failed++
			}
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil // per-file faults stay in results
		})
	}
	if err := g.Wait(); err != nil {
		return results, stats, err
	}
	return results, stats, nil
}

func (r *Runner) processOne(ctx context.Context, path, outputDir string) FileResult {
	res := FileResult{Path: path}

	final := r.Processor.ProcessFile(ctx, path)
	res.LLMUsed = final.LLMUsed
	res.Record = final

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outputDir, stem+".json")

	b, err := json.MarshalIndent(final, "", "  ")
	if err != nil {
		res.Err = fmt.Sprintf("marshal record: %v", err)
		return res
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		res.Err = fmt.Sprintf("write output: %v", err)
		return res
	}
	res.OutPath = outPath
	return res
}
