package fileops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
)

// OverwriteStrategy decides what happens when a destination path
// already exists.
type OverwriteStrategy string

const (
	Overwrite OverwriteStrategy = "overwrite"
	Rename    OverwriteStrategy = "rename"
	Skip      OverwriteStrategy = "skip"
)

// Result summarizes one batch operation. A source path that no longer
// exists is dropped silently, not counted as a failure: the selection
// snapshot may legitimately contain stale identifiers.
type Result struct {
	Kind     domain.OpKind
	Done     int
	Skipped  int
	Failures []domain.OpFailure
}

// Failed reports whether any path could not be processed
func (r Result) Failed() bool { return len(r.Failures) > 0 }

// Service executes batch file operations against a selection snapshot.
// It owns all filesystem I/O; callers only hand it sets of paths.
type Service struct {
	bus eventbus.EventBus
}

// NewService creates a new file operations service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Move moves every source into destDir, applying the overwrite
// strategy per destination collision.
func (s *Service) Move(ctx context.Context, sources []string, destDir string, strategy OverwriteStrategy) Result {
	s.publishStart(domain.OpMove, sources, destDir)
	res := Result{Kind: domain.OpMove}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			break
		}

		dest, ok, err := s.resolveDest(src, destDir, strategy)
		if err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			continue
		}
		if !ok {
			res.Skipped++
			continue
		}

		if err := moveEntry(src, dest); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			continue
		}
		res.Done++
	}

	s.publishDone(res, destDir, false)
	return res
}

// Copy copies every source into destDir
func (s *Service) Copy(ctx context.Context, sources []string, destDir string, strategy OverwriteStrategy) Result {
	s.publishStart(domain.OpCopy, sources, destDir)
	res := Result{Kind: domain.OpCopy}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			break
		}

		dest, ok, err := s.resolveDest(src, destDir, strategy)
		if err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			continue
		}
		if !ok {
			res.Skipped++
			continue
		}

		if err := copyEntry(src, dest); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: src, Err: err})
			continue
		}
		res.Done++
	}

	s.publishDone(res, destDir, false)
	return res
}

// Delete removes every path, to the system trash when requested with a
// permanent delete as fallback.
func (s *Service) Delete(ctx context.Context, paths []string, toTrash bool) Result {
	s.publishStart(domain.OpDelete, paths, "")
	res := Result{Kind: domain.OpDelete}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: path, Err: err})
			break
		}

		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			res.Skipped++
			continue
		}
		if err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: path, Err: err})
			continue
		}

		if err := deleteEntry(path, info.IsDir(), toTrash); err != nil {
			res.Failures = append(res.Failures, domain.OpFailure{Path: path, Err: err})
			continue
		}
		res.Done++
	}

	s.publishDone(res, "", toTrash)
	return res
}

// resolveDest stats the source, applies the overwrite strategy and
// returns the final destination. ok is false when the entry should be
// skipped (stale source, or Skip strategy on collision).
func (s *Service) resolveDest(src, destDir string, strategy OverwriteStrategy) (string, bool, error) {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}

	dest := filepath.Join(destDir, filepath.Base(src))
	if dest == src {
		return "", false, fmt.Errorf("source and destination are the same: %s", src)
	}

	if _, err := os.Stat(dest); err == nil {
		switch strategy {
		case Overwrite:
			if err := os.RemoveAll(dest); err != nil {
				return "", false, fmt.Errorf("failed to replace %s: %w", dest, err)
			}
		case Rename:
			dest = uniquePath(dest)
		case Skip:
			return "", false, nil
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create destination directory: %w", err)
	}

	return dest, true, nil
}

func (s *Service) publishStart(kind domain.OpKind, paths []string, dest string) {
	if s.bus != nil {
		s.bus.Publish(eventbus.OpStartedEvent{Kind: kind, Paths: paths, Dest: dest})
	}
}

func (s *Service) publishDone(res Result, dest string, toTrash bool) {
	if s.bus != nil {
		s.bus.Publish(eventbus.OpCompletedEvent{
			Kind:     res.Kind,
			Done:     res.Done,
			Failures: res.Failures,
			Dest:     dest,
			ToTrash:  toTrash,
		})
	}
}

// uniquePath probes name_1.ext, name_2.ext, ... until a free path is
// found.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// moveEntry renames, falling back to copy+delete across devices
func moveEntry(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyEntry(src, dest); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// copyEntry copies a file or directory recursively
func copyEntry(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(src, dest, info)
	}
	return copyFile(src, dest)
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

func copyDir(src, dest string, info os.FileInfo) error {
	if err := os.MkdirAll(dest, info.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if err := copyEntry(srcPath, destPath); err != nil {
			return err
		}
	}

	return nil
}

// deleteEntry removes a path, preferring the system trash
func deleteEntry(path string, isDir, toTrash bool) error {
	if toTrash {
		if err := moveToTrash(path); err == nil {
			return nil
		}
		// Trash unavailable, fall through to permanent delete
	}
	if isDir {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// moveToTrash moves a file or directory to the system trash/recycle bin
func moveToTrash(path string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`tell application "Finder" to delete POSIX file "%s"`, path)
		return exec.Command("osascript", "-e", script).Run()

	default: // Linux and others
		if commandExists("gio") {
			return exec.Command("gio", "trash", path).Run()
		}
		if commandExists("trash-put") {
			return exec.Command("trash-put", path).Run()
		}
		return fmt.Errorf("trash command not available (install trash-cli or gvfs)")
	}
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
