package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

// Service supplies directory snapshots to the UI. It never caches a
// listing; every ReadDir returns a fresh ordered sequence.
type Service interface {
	ReadDir(dir string, includeHidden bool) ([]domain.FileEntry, error)
	LoadDir(dir string, includeHidden bool)
}

// service is the concrete implementation
type service struct {
	bus eventbus.EventBus
}

// NewService creates a new listing service
func NewService(bus eventbus.EventBus) Service {
	return &service{bus: bus}
}

// ReadDir reads one directory into an ordered snapshot: directories
// first, then files, each group in case-insensitive name order.
func (s *service) ReadDir(dir string, includeHidden bool) ([]domain.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]domain.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())
		hidden := strings.HasPrefix(de.Name(), ".")
		if hidden && !includeHidden {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// Entry vanished between ReadDir and Stat
			continue
		}

		ext := ""
		category := domain.CategoryFolder
		if !de.IsDir() {
			ext = strings.ToLower(filepath.Ext(de.Name()))
			category = Classify(ext)
		}

		entries = append(entries, domain.FileEntry{
			Path:     path,
			Name:     de.Name(),
			Ext:      ext,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			IsDir:    de.IsDir(),
			IsHidden: hidden,
			Category: category,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

// LoadDir reads the directory and publishes the snapshot on the bus
func (s *service) LoadDir(dir string, includeHidden bool) {
	entries, err := s.ReadDir(dir, includeHidden)
	if err != nil {
		s.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to read %s", dir),
			Err:     err,
		})
		return
	}

	s.bus.Publish(eventbus.DirLoadedEvent{Dir: dir, Entries: entries})
}

// FormatSize renders a byte count the way the status bar shows it.
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1fGB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1fKB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
