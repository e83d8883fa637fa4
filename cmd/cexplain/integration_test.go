package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// ExplainTestSpec represents a single end-to-end test case.
type ExplainTestSpec struct {
	Name   string   `yaml:"name"`
	Input  string   `yaml:"input"`
	Expect []string `yaml:"expect"`           // stdout lines for valid input
	Errors []string `yaml:"errors"`           // parse error lines for invalid input
	Skip   string   `yaml:"skip,omitempty"`   // Reason to skip this test
}

// ExplainTestFile represents the explain.yaml file structure.
type ExplainTestFile struct {
	Tests []ExplainTestSpec `yaml:"tests"`
}

func TestExplainYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/explain.yaml")
	if err != nil {
		t.Fatalf("explain.yaml not found: %v", err)
	}

	var testFile ExplainTestFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse explain.yaml: %v", err)
	}
	if len(testFile.Tests) == 0 {
		t.Fatal("explain.yaml has no tests")
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			if tc.Skip != "" {
				t.Skip(tc.Skip)
			}

			out, errOut, err := runCmd(t, "", tc.Input)

			if len(tc.Errors) > 0 {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v (stdout: %q)", err, out)
				}
				for _, want := range tc.Errors {
					if !strings.Contains(errOut, want) {
						t.Errorf("stderr missing %q, got:\n%s", want, errOut)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", err, errOut)
			}
			expected := strings.Join(tc.Expect, "\n") + "\n"
			if out != expected {
				t.Errorf("wrong output.\nexpected=%q\ngot=%q", expected, out)
			}
		})
	}
}
