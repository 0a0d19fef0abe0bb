package testimonial

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout of a testimonial fixture
type fixtureFile struct {
	Testimonials []fixtureRecord `yaml:"testimonials"`
}

type fixtureRecord struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Quote   string `yaml:"quote"`
	Rating  int    `yaml:"rating"`
	Date    string `yaml:"date"`
}

// FileSource serves testimonials read from a YAML fixture. It may be reloaded
// from another goroutine while screens read it.
type FileSource struct {
	path string

	mu      sync.RWMutex
	records []Testimonial
}

// LoadFile reads the fixture at path
func LoadFile(path string) (*FileSource, error) {
	if err := validateFixturePath(path); err != nil {
		return nil, fmt.Errorf("invalid fixture path: %w", err)
	}
	s := &FileSource{path: filepath.Clean(path)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the fixture location
func (s *FileSource) Path() string {
	return s.path
}

// List returns a copy of the last successfully loaded records
func (s *FileSource) List() ([]Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Testimonial, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Reload re-reads the fixture. On error the previous records are kept.
func (s *FileSource) Reload() error {
	// #nosec G304 - path is validated by validateFixturePath()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read fixture: %w", err)
	}

	records, err := parseFixture(data)
	if err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

func parseFixture(data []byte) ([]Testimonial, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	records := make([]Testimonial, 0, len(file.Testimonials))
	for i, rec := range file.Testimonials {
		t := Testimonial{
			ID:      rec.ID,
			Name:    rec.Name,
			Company: rec.Company,
			Quote:   rec.Quote,
			Rating:  rec.Rating,
		}
		if t.ID == 0 {
			t.ID = i + 1
		}
		if rec.Date != "" {
			d, err := time.Parse(DateLayout, rec.Date)
			if err != nil {
				return nil, fmt.Errorf("testimonial %d: invalid date %q: %w", t.ID, rec.Date, err)
			}
			t.Date = d
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		records = append(records, t)
	}
	return records, nil
}

// MarshalFixture renders records in the fixture layout
func MarshalFixture(records []Testimonial) ([]byte, error) {
	file := fixtureFile{Testimonials: make([]fixtureRecord, 0, len(records))}
	for i := range records {
		rec := fixtureRecord{
			ID:      records[i].ID,
			Name:    records[i].Name,
			Company: records[i].Company,
			Quote:   records[i].Quote,
			Rating:  records[i].Rating,
		}
		if !records[i].Date.IsZero() {
			rec.Date = records[i].Date.Format(DateLayout)
		}
		file.Testimonials = append(file.Testimonials, rec)
	}
	return yaml.Marshal(&file)
}

// validateFixturePath checks that a fixture path is a YAML file without
// traversal components
func validateFixturePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)
	if slices.Contains(strings.Split(filepath.ToSlash(cleanPath), "/"), "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("fixture file must have .yaml or .yml extension")
	}
	return nil
}
