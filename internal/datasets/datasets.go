// internal/datasets/datasets.go
// Package datasets holds the static mapping from dataset tags to gold
// reference files and corpus selectors.
package datasets

import (
	"fmt"
	"path/filepath"
)

// DefaultReferenceDir is the directory gold reference files are resolved
// against when the configuration does not override it.
const DefaultReferenceDir = "jga_reference"

// Corpus identifies which of the two supported dialogue corpora a dataset
// belongs to. The corpus decides which schema the fuzzy normalizer applies.
type Corpus string

const (
	// SAMultiWOZ is the speech-aware MultiWOZ corpus.
	SAMultiWOZ Corpus = "sa"
	// SpokenWOZ is the SpokenWOZ corpus.
	SpokenWOZ Corpus = "sp"
)

// Name returns the human-readable corpus name.
func (c Corpus) Name() string {
	switch c {
	case SAMultiWOZ:
		return "SA-MultiWOZ"
	case SpokenWOZ:
		return "SpokenWOZ"
	default:
		return string(c)
	}
}

// Dataset describes one evaluable dataset: its CLI tag, the gold reference
// file it is scored against, and the corpus it belongs to.
type Dataset struct {
	Tag           string
	GoldReference string
	Corpus        Corpus
}

// ReferencePath joins the gold reference file name with the reference root
// directory. An empty root falls back to DefaultReferenceDir.
func (d Dataset) ReferencePath(root string) string {
	if root == "" {
		root = DefaultReferenceDir
	}
	return filepath.Join(root, d.GoldReference)
}

// table is the full set of supported datasets, in display order. It is
// constructed once and never mutated.
var table = []Dataset{
	{Tag: "sa_dev", GoldReference: "sa_multiwoz_dev_jga_reference.json", Corpus: SAMultiWOZ},
	{Tag: "sa_test_v", GoldReference: "sa_multiwoz_test_verbatim_jga_reference.json", Corpus: SAMultiWOZ},
	{Tag: "sa_test_p", GoldReference: "sa_multiwoz_test_paraphrased_jga_reference.json", Corpus: SAMultiWOZ},
	{Tag: "sp_dev", GoldReference: "spokenwoz_dev_jga_reference.json", Corpus: SpokenWOZ},
	{Tag: "sp_test", GoldReference: "spokenwoz_test_jga_reference.json", Corpus: SpokenWOZ},
}

// Resolve looks up a dataset by its tag. The tag match is exact and
// case-sensitive.
func Resolve(tag string) (Dataset, error) {
	for _, d := range table {
		if d.Tag == tag {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%s not understood.", tag)
}

// All returns a copy of the dataset table in display order.
func All() []Dataset {
	out := make([]Dataset, len(table))
	copy(out, table)
	return out
}

// Tags returns the valid dataset tags in display order.
func Tags() []string {
	tags := make([]string, 0, len(table))
	for _, d := range table {
		tags = append(tags, d.Tag)
	}
	return tags
}
