// internal/pipeline/pipeline.go
// Package pipeline sequences the three-phase evaluation run: strict scoring,
// fuzzy normalization, and scoring of the normalized predictions.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/dstlab/wozeval/internal/datasets"
	"github.com/dstlab/wozeval/internal/logging"
)

// DefaultWorkers is the fuzzy-normalizer worker hint used when the request
// does not carry one.
const DefaultWorkers = 4

// Scorer scores a predictions file against a gold reference file and writes
// a score report to outputPath.
type Scorer interface {
	Score(ctx context.Context, goldenPath, inputPath, outputPath string) error
}

// Normalizer rewrites a predictions file with slot values canonicalized for
// lenient comparison, preserving the input's key structure. The corpus
// selects which ontology the normalizer matches against; workers is an
// opaque parallelism hint.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath, outputPath string, corpus datasets.Corpus, workers int) error
}

// Request describes one evaluation run.
type Request struct {
	PredictionsPath string
	DatasetTag      string
	OutputBaseDir   string
	Workers         int
}

// Result reports where a completed run left its artifacts.
type Result struct {
	Dataset datasets.Dataset
	Golden  string
	Paths   RunPaths
}

// Pipeline runs evaluations through a pair of external collaborators.
type Pipeline struct {
	scorer       Scorer
	normalizer   Normalizer
	referenceDir string
}

// New builds a pipeline around the given collaborators. referenceDir is the
// root gold reference files are resolved against; empty selects the default.
func New(scorer Scorer, normalizer Normalizer, referenceDir string) *Pipeline {
	return &Pipeline{
		scorer:       scorer,
		normalizer:   normalizer,
		referenceDir: referenceDir,
	}
}

// Run executes the three phases strictly in order. An unknown dataset tag
// fails before anything is written; any phase failure aborts the run and
// leaves already-written artifacts in place. Reruns with the same inputs
// overwrite all three artifacts.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	ds, err := datasets.Resolve(req.DatasetTag)
	if err != nil {
		return Result{}, err
	}

	workers := req.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	golden := ds.ReferencePath(p.referenceDir)
	paths := DeriveRunPaths(req.PredictionsPath, req.OutputBaseDir)

	if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("error creating results directory: %w", err)
	}

	logging.LogPhase("strict-score", "golden=%s input=%s output=%s", golden, req.PredictionsPath, paths.Score)
	if err := p.scorer.Score(ctx, golden, req.PredictionsPath, paths.Score); err != nil {
		return Result{}, fmt.Errorf("strict scoring: %w", err)
	}

	logging.LogPhase("fuzzy-normalize", "corpus=%s input=%s output=%s workers=%d", ds.Corpus.Name(), req.PredictionsPath, paths.Fuzzy, workers)
	if err := p.normalizer.Normalize(ctx, req.PredictionsPath, paths.Fuzzy, ds.Corpus, workers); err != nil {
		return Result{}, fmt.Errorf("fuzzy normalization: %w", err)
	}

	logging.LogPhase("fuzzy-score", "golden=%s input=%s output=%s", golden, paths.Fuzzy, paths.FuzzyScore)
	if err := p.scorer.Score(ctx, golden, paths.Fuzzy, paths.FuzzyScore); err != nil {
		return Result{}, fmt.Errorf("fuzzy scoring: %w", err)
	}

	return Result{Dataset: ds, Golden: golden, Paths: paths}, nil
}
