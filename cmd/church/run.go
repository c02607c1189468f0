package main

import (
	"fmt"
	"os"
	"strings"

	"church/interpreter-go/pkg/driver"
	"church/interpreter-go/pkg/interpreter"
)

func runManifest(args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "church run accepts at most one path")
		return 1
	}
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	path, err := findManifest(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	manifest, err := driver.LoadManifest(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	session := interpreter.New().NewSession()
	failed := 0
	fmt.Fprintf(os.Stdout, "%s (%d steps)\n", manifest.Name, len(manifest.Steps))
	for _, step := range manifest.Steps {
		result, ok := runStep(session, step)
		status := "ok  "
		if !ok {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(os.Stdout, "%s %s: %s\n", status, step.Name, result)
	}
	fmt.Fprintf(os.Stdout, "%d passed, %d failed\n", len(manifest.Steps)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// runStep evaluates one step in the run's session and reports a one-line
// outcome and whether it met the step's expectation. A passing step with
// Bind stores its value for the steps after it.
func runStep(session *interpreter.Session, step *driver.Step) (string, bool) {
	val, err := session.Evaluate(step.Term)
	if err != nil {
		if step.ExpectError == "" {
			return fmt.Sprintf("error: %v", err), false
		}
		if !strings.Contains(err.Error(), step.ExpectError) {
			return fmt.Sprintf("expected error containing %q, got %v", step.ExpectError, err), false
		}
		return fmt.Sprintf("error: %v", err), true
	}
	rendered, err := interpreter.Render(val, step.Decode)
	if err != nil {
		return fmt.Sprintf("decode %s: %v", step.Decode, err), false
	}
	if step.ExpectError != "" {
		return fmt.Sprintf("expected error containing %q, got %s", step.ExpectError, rendered), false
	}
	if step.Expect != nil && rendered != *step.Expect {
		return fmt.Sprintf("expected %s, got %s", *step.Expect, rendered), false
	}
	if step.Bind != "" {
		if err := session.Bind(step.Bind, val); err != nil {
			return err.Error(), false
		}
		return fmt.Sprintf("%s (bound to %s)", rendered, step.Bind), true
	}
	return rendered, true
}
