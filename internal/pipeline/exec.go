// internal/pipeline/exec.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dstlab/wozeval/internal/datasets"
	"github.com/dstlab/wozeval/internal/logging"
)

// ExecScorer invokes the external mwzeval scorer CLI in DST mode.
type ExecScorer struct {
	// Command is the argv prefix, e.g. ["python3", "evaluate.py"].
	Command []string
}

// NewExecScorer builds a subprocess-backed scorer from an argv prefix.
func NewExecScorer(command []string) *ExecScorer {
	return &ExecScorer{Command: command}
}

// Score runs the scorer to completion, streaming its output to the
// harness's stdout/stderr. A non-zero exit is returned as an error.
func (s *ExecScorer) Score(ctx context.Context, goldenPath, inputPath, outputPath string) error {
	if len(s.Command) == 0 {
		return errors.New("scorer command is not configured")
	}
	args := s.args(goldenPath, inputPath, outputPath)

	cmd := exec.CommandContext(ctx, s.Command[0], args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logging.LogEvent("scorer: %s %s", s.Command[0], strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("scorer %q: %w", s.Command[0], err)
	}
	return nil
}

func (s *ExecScorer) args(goldenPath, inputPath, outputPath string) []string {
	args := append([]string{}, s.Command[1:]...)
	return append(args, "--dst", "-g", goldenPath, "-i", inputPath, "-o", outputPath)
}

// ExecNormalizer invokes the external fuzzy preprocessor CLI.
type ExecNormalizer struct {
	// Command is the argv prefix, e.g. ["python3", "preprocessor_fuzzy.py"].
	Command []string
}

// NewExecNormalizer builds a subprocess-backed normalizer from an argv prefix.
func NewExecNormalizer(command []string) *ExecNormalizer {
	return &ExecNormalizer{Command: command}
}

// Normalize runs the fuzzy preprocessor to completion. The corpus picks one
// of the preprocessor's two mutually exclusive dataset flags; workers is
// forwarded as its --nj parallelism hint.
func (n *ExecNormalizer) Normalize(ctx context.Context, inputPath, outputPath string, corpus datasets.Corpus, workers int) error {
	if len(n.Command) == 0 {
		return errors.New("fuzzy normalizer command is not configured")
	}
	args, err := n.args(inputPath, outputPath, corpus, workers)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, n.Command[0], args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logging.LogEvent("fuzzy normalizer: %s %s", n.Command[0], strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("fuzzy normalizer %q: %w", n.Command[0], err)
	}
	return nil
}

func (n *ExecNormalizer) args(inputPath, outputPath string, corpus datasets.Corpus, workers int) ([]string, error) {
	flag, err := corpusFlag(corpus)
	if err != nil {
		return nil, err
	}
	args := append([]string{}, n.Command[1:]...)
	return append(args,
		flag,
		"--in_json", inputPath,
		"--out_json", outputPath,
		"--nj", strconv.Itoa(workers),
	), nil
}

func corpusFlag(corpus datasets.Corpus) (string, error) {
	switch corpus {
	case datasets.SAMultiWOZ:
		return "--sa", nil
	case datasets.SpokenWOZ:
		return "--sp", nil
	default:
		return "", fmt.Errorf("unknown corpus %q", corpus)
	}
}
