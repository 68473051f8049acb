// Package input loads puzzle inputs from disk or a reader.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/helixml/aoc2023/domain/puzzle"
)

// ErrNotFound indicates no input file exists for a day.
var ErrNotFound = errors.New("puzzle input not found")

// Directory resolves puzzle inputs inside a directory.
type Directory struct {
	root string
}

// NewDirectory creates a Directory rooted at path.
func NewDirectory(path string) Directory {
	return Directory{root: filepath.Clean(path)}
}

// Root returns the directory path.
func (d Directory) Root() string { return d.root }

// candidates returns the file names tried for a day, in order.
func (d Directory) candidates(day puzzle.Day) []string {
	return []string{
		filepath.Join(d.root, day.String()+".txt"),
		filepath.Join(d.root, fmt.Sprintf("%d.input", int(day))),
	}
}

// Path returns the first existing input file for the day, preferring
// day05.txt over 5.input.
func (d Directory) Path(day puzzle.Day) (string, error) {
	for _, path := range d.candidates(day) {
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat input: %w", err)
		}
		if info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, day, d.root)
}

// Load reads the input for the day.
func (d Directory) Load(day puzzle.Day) (string, error) {
	path, err := d.Path(day)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// File reads an input from an explicit path.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// Read reads a whole input from r, typically stdin.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
