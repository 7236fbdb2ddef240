package wozeval

import (
	"strings"
	"testing"

	"github.com/dstlab/wozeval/internal/appconfig"
)

func TestValidateEvaluateArgsTooFew(t *testing.T) {
	err := validateEvaluateArgs(evaluateCmd, []string{"preds.json", "sa_dev"})
	if err == nil {
		t.Fatal("expected usage error for fewer than 3 args")
	}
	msg := err.Error()
	if !strings.Contains(msg, "evaluate <predictions> <dataset> <output-dir> [workers]") {
		t.Fatalf("usage must name the expected parameters, got: %s", msg)
	}
	for _, tag := range []string{"sa_dev", "sa_test_v", "sa_test_p", "sp_dev", "sp_test"} {
		if !strings.Contains(msg, tag) {
			t.Fatalf("usage must name valid tag %q, got: %s", tag, msg)
		}
	}
}

func TestValidateEvaluateArgsAcceptsThreeOrFour(t *testing.T) {
	if err := validateEvaluateArgs(evaluateCmd, []string{"p.json", "sa_dev", "out"}); err != nil {
		t.Fatalf("3 args must be accepted: %v", err)
	}
	if err := validateEvaluateArgs(evaluateCmd, []string{"p.json", "sa_dev", "out", "8"}); err != nil {
		t.Fatalf("4 args must be accepted: %v", err)
	}
	if err := validateEvaluateArgs(evaluateCmd, []string{"a", "b", "c", "d", "e"}); err == nil {
		t.Fatal("expected error for more than 4 args")
	}
}

func TestRunEvaluateRejectsNonIntegerWorkers(t *testing.T) {
	currentConfig = &appconfig.Config{}
	t.Cleanup(func() { currentConfig = nil })

	err := runEvaluate(evaluateCmd, []string{"p.json", "sa_dev", t.TempDir(), "abc"})
	if err == nil {
		t.Fatal("expected error for non-integer workers")
	}
	if !strings.Contains(err.Error(), "workers must be an integer") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunEvaluateUnknownTagFailsBeforeAnyWork(t *testing.T) {
	currentConfig = &appconfig.Config{}
	t.Cleanup(func() { currentConfig = nil })

	err := runEvaluate(evaluateCmd, []string{"p.json", "bogus", t.TempDir()})
	if err == nil {
		t.Fatal("expected error for unknown dataset tag")
	}
	if err.Error() != "bogus not understood." {
		t.Fatalf("unexpected error: %v", err)
	}
}
