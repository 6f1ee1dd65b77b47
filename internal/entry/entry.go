// Package entry manages the daily brag file on disk.
package entry

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// template seeds a fresh brag file. The heading doubles as the message
// title when the file is delivered.
const template = `### %s

Motivation summary:

Shout outs:

Improvements:

`

// Filename returns the brag file path for the given day.
func Filename(workdir string, now time.Time) string {
	return filepath.Join(workdir, now.Format("brag-2006-01-02.md"))
}

// EnsureFile creates filename seeded with the template when it does not
// already exist. Existing files are left untouched.
func EnsureFile(filename string, now time.Time) error {
	if _, err := os.Stat(filename); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	content := fmt.Sprintf(template, now.Format("2006-01-02"))
	return os.WriteFile(filename, []byte(content), 0o644)
}

// Read returns the full contents of the brag file.
func Read(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading brag file: %w", err)
	}
	return string(data), nil
}

// OpenEditor runs the configured editor on filename with stdio attached,
// blocking until the editor exits.
func OpenEditor(editor, editorArgs, filename string) error {
	args := strings.Fields(editorArgs)
	args = append(args, filename)

	cmd := exec.Command(editor, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", editor, err)
	}
	return nil
}

// List returns every brag file under workdir (any depth), sorted by name.
// The date-stamped filename scheme makes that chronological order.
func List(workdir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(workdir), "**/brag-*.md")
	if err != nil {
		return nil, fmt.Errorf("globbing brag files: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
