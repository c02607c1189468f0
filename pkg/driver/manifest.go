package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"church/interpreter-go/pkg/ast"
	"church/interpreter-go/pkg/interpreter"
)

// ManifestFileName is the file `church run` looks for when given a directory.
const ManifestFileName = "church.yml"

// Manifest is a parsed demonstration file: named steps, each a term to
// evaluate and the decoded result it should produce.
type Manifest struct {
	Path        string
	Name        string
	Description string
	Steps       []*Step
}

// Step is one demonstration call.
type Step struct {
	Name        string
	Term        ast.Term
	Decode      interpreter.DecodeMode
	Expect      *string
	ExpectError string
	// Bind names the result for later steps of the same run.
	Bind string
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses a manifest from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	manifest, err := DecodeManifest(file)
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", absPath, err)
	}
	manifest.Path = absPath
	return manifest, nil
}

// DecodeManifest reads and validates a manifest from r.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty manifest")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	return raw.toManifest()
}

type manifestFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Steps       []stepFile `yaml:"steps"`
}

type stepFile struct {
	Name        string    `yaml:"name"`
	Call        string    `yaml:"call"`
	Args        termList  `yaml:"args"`
	Decode      string    `yaml:"decode"`
	Expect      yaml.Node `yaml:"expect"`
	ExpectError string    `yaml:"expect_error"`
	Bind        string    `yaml:"bind"`
}

func (raw *manifestFile) toManifest() (*Manifest, error) {
	var errs ValidationError
	m := &Manifest{
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
	}
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if len(raw.Steps) == 0 {
		errs.Issues = append(errs.Issues, "steps must list at least one step")
	}

	seen := make(map[string]int, len(raw.Steps))
	bound := make(map[string]int)
	for idx, rs := range raw.Steps {
		label := fmt.Sprintf("steps[%d]", idx)
		name := strings.TrimSpace(rs.Name)
		if name == "" {
			errs.Issues = append(errs.Issues, label+": name must be provided")
		} else {
			label = fmt.Sprintf("steps[%d] (%s)", idx, name)
			if prev, ok := seen[name]; ok {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s: duplicate name, first used by steps[%d]", label, prev))
			}
			seen[name] = idx
		}
		callee := strings.TrimSpace(rs.Call)
		if callee == "" {
			errs.Issues = append(errs.Issues, label+": call must name a binding")
		}
		mode, err := interpreter.ParseDecodeMode(rs.Decode)
		if err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: %v", label, err))
		}
		// A zero Kind means the key was absent; `expect: ~` is a null scalar.
		hasExpect := rs.Expect.Kind != 0
		if hasExpect && rs.ExpectError != "" {
			errs.Issues = append(errs.Issues, label+": expect and expect_error are mutually exclusive")
		}

		bind := strings.TrimSpace(rs.Bind)
		if bind != "" {
			if prev, ok := bound[bind]; ok {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s: bind %q already used by steps[%d]", label, bind, prev))
			}
			if rs.ExpectError != "" {
				errs.Issues = append(errs.Issues, label+": bind and expect_error are mutually exclusive")
			}
			bound[bind] = idx
		}

		step := &Step{
			Name:        name,
			Term:        ast.NewFunctionCall(ast.Ref(callee), rs.Args),
			Decode:      mode,
			ExpectError: strings.TrimSpace(rs.ExpectError),
			Bind:        bind,
		}
		if hasExpect {
			text, err := expectationText(&rs.Expect)
			if err != nil {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s: %v", label, err))
			} else {
				step.Expect = &text
			}
		}
		m.Steps = append(m.Steps, step)
	}

	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return m, nil
}
