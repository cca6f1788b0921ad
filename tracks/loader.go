package tracks

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a single track file.
func Parse(name string, data []byte) (*Track, error) {
	var t Track
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse track YAML: %w", err)
	}
	t.Name = name

	if err := validate(&t); err != nil {
		return nil, fmt.Errorf("invalid track %q: %w", name, err)
	}
	return &t, nil
}

func validate(t *Track) error {
	if t.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if t.ScoredLineCount() == 0 {
		return fmt.Errorf("track has no scored lyric lines")
	}
	last := -1.0
	for i, l := range t.Lines {
		if l.At < 0 || l.Duration < 0 {
			return fmt.Errorf("line %d has negative timing", i)
		}
		if l.At < last {
			return fmt.Errorf("line %d starts before the previous line", i)
		}
		last = l.At
	}
	for i, c := range t.Cues {
		if c.Height != "high" && c.Height != "low" {
			return fmt.Errorf("cue %d has height %q, want \"high\" or \"low\"", i, c.Height)
		}
	}
	return nil
}

// LoadAll reads every *.yaml track under dir in fsys, sorted by file name.
// Malformed files are logged and skipped rather than failing the whole
// listing, so one bad track never blocks the menu.
func LoadAll(fsys fs.FS, dir string) []*Track {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		log.Printf("Warning: could not read tracks dir %q: %v", dir, err)
		return nil
	}

	var out []*Track
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			log.Printf("Warning: could not read track %q: %v", e.Name(), err)
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		t, err := Parse(name, data)
		if err != nil {
			log.Printf("Warning: skipping track %q: %v", e.Name(), err)
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
