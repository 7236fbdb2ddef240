// internal/cli/evaluate.go
package wozeval

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dstlab/wozeval/internal/datasets"
	"github.com/dstlab/wozeval/internal/pipeline"
	"github.com/dstlab/wozeval/internal/report"
	"github.com/spf13/cobra"
)

// evaluateCmd runs the full strict-then-fuzzy evaluation for one
// predictions file.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <predictions> <dataset> <output-dir> [workers]",
	Short: "Score predictions strictly, fuzzy-normalize them, and score again",
	Long: `Evaluate dialogue-state-tracking predictions against the gold reference
for a dataset. Three artifacts are written under <output-dir>/<run>/:
the strict score report (<name>_score.json), the fuzzy-normalized
predictions (<name>_fuzzy.json), and the score report over the
normalized predictions (<name>_fuzzy_score.json).

Valid datasets: ` + strings.Join(datasets.Tags(), " | "),
	Args: validateEvaluateArgs,
	RunE: runEvaluate,
}

func validateEvaluateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf(
			"usage: wozeval evaluate <predictions> <dataset> <output-dir> [workers]\nvalid datasets: %s",
			strings.Join(datasets.Tags(), " | "),
		)
	}
	if len(args) > 4 {
		return fmt.Errorf("accepts at most 4 args, received %d", len(args))
	}
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}

	workers := cfg.WorkerCount()
	if len(args) == 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("workers must be an integer, got %q", args[3])
		}
		workers = n
	}

	p := pipeline.New(
		pipeline.NewExecScorer(cfg.ScorerArgs()),
		pipeline.NewExecNormalizer(cfg.FuzzyArgs()),
		cfg.ReferenceRoot(),
	)

	res, err := p.Run(cmd.Context(), pipeline.Request{
		PredictionsPath: args[0],
		DatasetTag:      args[1],
		OutputBaseDir:   args[2],
		Workers:         workers,
	})
	if err != nil {
		return err
	}

	// The artifacts are the product; a summary failure is reported but does
	// not fail the run.
	opts := report.Options{JSONMode: cfg.JSONMode, Debug: cfg.Debug}
	if err := report.PrintSummary(res.Paths.Score, res.Paths.FuzzyScore, opts); err != nil {
		log.Printf("error summarizing scores: %v", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
