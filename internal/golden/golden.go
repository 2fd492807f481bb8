// Copyright 2024-2026 The FormatKit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs file-system-backed test corpora: table-driven tests
// where the table lives in testdata.
//
// Each file under [Corpus].Root with the configured extension defines one
// test case. The case's expected outputs live next to it, named by appending
// each [Output].Extension to the case file's name. Setting the environment
// variable named by [Corpus].Refresh to a glob regenerates the outputs of
// every matching case instead of checking them.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a testdata-backed test suite.
type Corpus struct {
	// Root of the corpus, relative to the file that calls [Corpus.Run].
	Root string

	// Name of an environment variable holding a refresh glob.
	Refresh string

	// Extension (without the dot) of files that define a test case.
	Extension string

	// Outputs each case is expected to produce, in order.
	Outputs []Output
}

// Output describes one expected output of a corpus case.
type Output struct {
	// Extension appended to the case file's name to locate the expected
	// output. A missing file is treated as expecting the empty string.
	Extension string
}

// Run executes test with every case in the corpus as a subtest. test must
// fill in one string per configured [Output].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	root := filepath.Join(callerDir(), c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: could not walk corpus root %q: %v", root, err)
	}

	refresh := os.Getenv(c.Refresh)
	if c.Refresh != "" && !doublestar.ValidatePattern(refresh) {
		t.Fatalf("golden: invalid refresh glob %q", refresh)
	}
	if refresh != "" {
		// Regenerated outputs must not land silently.
		t.Errorf("golden: refreshing outputs because %s=%s", c.Refresh, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(root, path)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: could not read case %q: %v", path, err)
			}

			results := make([]string, len(c.Outputs))
			test(t, name, string(text), results)

			regen, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if regen {
					c.write(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: could not read output %q: %v", path, err)
					continue
				}
				if diff := diff(string(want), results[i]); diff != "" {
					t.Errorf("golden: mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// write replaces one expected-output file, deleting it if the output is
// empty.
func (c Corpus) write(t *testing.T, path, text string) {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: could not delete output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o666); err != nil {
		t.Errorf("golden: could not write output %q: %v", path, err)
	}
}

// diff returns a unified diff between want and got, or "" if they match.
func diff(want, got string) string {
	if want == got {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// callerDir returns the directory of the test file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("linewrap/golden: could not determine caller's directory")
	}
	return filepath.Dir(file)
}
