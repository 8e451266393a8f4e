package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/dto"
)

var snapshotNameRe = regexp.MustCompile(`[^a-z0-9]+`)

// SnapshotStore persists scraped portfolios as JSON files so imports can
// be replayed without re-scraping.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a store rooted at dir, creating it if needed.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &SnapshotStore{dir: dir}, nil
}

// Write stores a snapshot as <firm>_<date>.json and returns the path.
func (s *SnapshotStore) Write(snapshot dto.PortfolioSnapshot) (string, error) {
	slug := strings.Trim(snapshotNameRe.ReplaceAllString(strings.ToLower(snapshot.PEFirm), "_"), "_")
	name := fmt.Sprintf("%s_%s.json", slug, time.Now().Format("2006-01-02"))
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// Read loads a snapshot file.
func (s *SnapshotStore) Read(path string) (dto.PortfolioSnapshot, error) {
	var snapshot dto.PortfolioSnapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snapshot, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// Latest returns the most recent snapshot files, one per firm.
func (s *SnapshotStore) Latest() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot dir: %w", err)
	}

	latest := make(map[string]string)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		// Name format is <firm>_<yyyy-mm-dd>.json, so lexicographic
		// comparison picks the newest date per firm.
		base := strings.TrimSuffix(name, ".json")
		idx := strings.LastIndex(base, "_")
		if idx <= 0 {
			continue
		}
		firm := base[:idx]
		if prev, ok := latest[firm]; !ok || name > prev {
			latest[firm] = name
		}
	}

	paths := make([]string, 0, len(latest))
	for _, name := range latest {
		paths = append(paths, filepath.Join(s.dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
