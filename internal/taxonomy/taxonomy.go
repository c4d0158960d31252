// Package taxonomy holds the process -> document -> description hierarchy
// used to populate the selection lists of the file name generator.
package taxonomy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultTaxonomyPath = "assets/taxonomy.yaml"
const TaxonomyPathEnvVar = "DATEINAME_TAXONOMY"

// MiscSentinel is the catch-all description closing every description list.
const MiscSentinel = "ZZZ_Miscellaneous"

// Taxonomy is the read-only configuration the store is built from. It is
// constructed once at start-up and never mutated afterwards.
type Taxonomy struct {
	Processes []Process `yaml:"processes"`
	Persons   []string  `yaml:"persons"`
}

// Process is a top-level case stage (Vorgang).
type Process struct {
	Name      string     `yaml:"name"`
	Documents []Document `yaml:"documents"`
}

// Document is a document category (Dokument), meaningful only under its process.
type Document struct {
	Name         string   `yaml:"name"`
	Descriptions []string `yaml:"descriptions"`
}

// Parse decodes a YAML taxonomy and checks its integrity.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and validates a taxonomy file.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadOrDefault loads the taxonomy at path, or returns the compiled-in one
// when path is empty.
func LoadOrDefault(path string) (*Taxonomy, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Marshal encodes the taxonomy as YAML.
func (t *Taxonomy) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// ResolvePath finds a taxonomy file. The env var wins, then the relative path
// is tried against the working directory and the executable's directory.
// An empty result with a nil error means no file was found and the
// compiled-in taxonomy should be used.
func ResolvePath(defaultRelativePath string) (string, error) {
	defaultRelativePath = strings.TrimSpace(defaultRelativePath)
	if defaultRelativePath == "" {
		defaultRelativePath = DefaultTaxonomyPath
	}

	if configured := strings.TrimSpace(os.Getenv(TaxonomyPathEnvVar)); configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%s points to %s: %w", TaxonomyPathEnvVar, configured, err)
		}
		return configured, nil
	}

	candidates := []string{}
	if filepath.IsAbs(defaultRelativePath) {
		candidates = append(candidates, defaultRelativePath)
	} else {
		if wd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(wd, defaultRelativePath))
		}
		if exePath, err := os.Executable(); err == nil {
			exeDir := filepath.Dir(exePath)
			candidates = append(candidates,
				filepath.Join(exeDir, defaultRelativePath),
				filepath.Join(exeDir, "..", defaultRelativePath),
			)
		}
	}

	for _, candidate := range candidates {
		candidate = filepath.Clean(candidate)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// Validate reports every integrity problem at once: duplicate or empty keys,
// document categories without descriptions and description lists that do not
// end with MiscSentinel.
func (t *Taxonomy) Validate() error {
	var errs []error
	if len(t.Processes) == 0 {
		errs = append(errs, errors.New("taxonomy has no process categories"))
	}

	seenProcess := map[string]struct{}{}
	for i, p := range t.Processes {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("process #%d has an empty name", i+1))
			continue
		}
		if _, ok := seenProcess[p.Name]; ok {
			errs = append(errs, fmt.Errorf("process %q is listed twice", p.Name))
		}
		seenProcess[p.Name] = struct{}{}
		if !isFolderName(p.Name) {
			errs = append(errs, fmt.Errorf("process %q is not usable as a folder name", p.Name))
		}

		if len(p.Documents) == 0 {
			errs = append(errs, fmt.Errorf("process %q has no document categories", p.Name))
		}
		seenDocument := map[string]struct{}{}
		for j, d := range p.Documents {
			if strings.TrimSpace(d.Name) == "" {
				errs = append(errs, fmt.Errorf("process %q: document #%d has an empty name", p.Name, j+1))
				continue
			}
			if _, ok := seenDocument[d.Name]; ok {
				errs = append(errs, fmt.Errorf("process %q: document %q is listed twice", p.Name, d.Name))
			}
			seenDocument[d.Name] = struct{}{}
			if !isFolderName(d.Name) {
				errs = append(errs, fmt.Errorf("process %q: document %q is not usable as a folder name", p.Name, d.Name))
			}

			if len(d.Descriptions) == 0 {
				errs = append(errs, fmt.Errorf("(%s, %s) has no descriptions", p.Name, d.Name))
				continue
			}
			if last := d.Descriptions[len(d.Descriptions)-1]; last != MiscSentinel {
				errs = append(errs, fmt.Errorf("(%s, %s) must end with %s, ends with %q", p.Name, d.Name, MiscSentinel, last))
			}
		}
	}

	for i, person := range t.Persons {
		if strings.TrimSpace(person) == "" {
			errs = append(errs, fmt.Errorf("person #%d is empty", i+1))
		}
	}
	return errors.Join(errs...)
}

// isFolderName reports whether a category key is a single path element.
// Case folders are laid out as <process>/<document>.
func isFolderName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (t *Taxonomy) clone() *Taxonomy {
	out := &Taxonomy{
		Processes: make([]Process, len(t.Processes)),
		Persons:   append([]string(nil), t.Persons...),
	}
	for i, p := range t.Processes {
		docs := make([]Document, len(p.Documents))
		for j, d := range p.Documents {
			docs[j] = Document{Name: d.Name, Descriptions: append([]string(nil), d.Descriptions...)}
		}
		out.Processes[i] = Process{Name: p.Name, Documents: docs}
	}
	return out
}
