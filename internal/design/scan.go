package design

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Suffixes recognized as sequencing read files.
var Suffixes = []string{".fq", ".fq.gz", ".fastq", ".fastq.gz"}

func IsReadFile(name string) bool {
	for _, suffix := range Suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// NotFoundError reports a scan root that is missing or not a directory.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fastq directory not found: %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

type frame struct {
	dir     string
	info    fs.FileInfo
	entries []fs.DirEntry
	next    int
}

// Scanner walks a directory and yields read files one at a time, in the
// style of bufio.Scanner. Subdirectories are entered where they are listed,
// and only when recursive is set. A Scanner can not be restarted.
type Scanner struct {
	root      string
	recursive bool
	stack     []frame
	started   bool
	path      string
	err       error
}

// NewScanner returns a Scanner over root. Nothing is read before the first
// call to Scan.
func NewScanner(root string, recursive bool) *Scanner {
	return &Scanner{root: root, recursive: recursive}
}

func (s *Scanner) push(dir string, info fs.FileInfo) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	s.stack = append(s.stack, frame{dir: dir, info: info, entries: entries})
	return nil
}

// visiting reports whether info is a directory already open on the stack,
// i.e. a symlink pointing back to one of its parents.
func (s *Scanner) visiting(info fs.FileInfo) bool {
	for _, f := range s.stack {
		if os.SameFile(f.info, info) {
			return true
		}
	}
	return false
}

// stat follows symlinks, so a link to a directory is treated as one.
// A dangling or looping link is left to the suffix check like a file.
func stat(path string, entry fs.DirEntry) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(path); err == nil {
			return info, nil
		}
	}
	return entry.Info()
}

func (s *Scanner) start() bool {
	s.started = true
	info, err := os.Stat(s.root)
	if err != nil {
		s.err = &NotFoundError{Path: s.root, Err: err}
		return false
	}
	if !info.IsDir() {
		s.err = &NotFoundError{Path: s.root, Err: fmt.Errorf("not a directory")}
		return false
	}
	if err = s.push(s.root, info); err != nil {
		s.err = err
		return false
	}
	return true
}

// Scan advances to the next read file. It returns false at the end of the
// walk or on error; Err tells them apart.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.started && !s.start() {
		return false
	}
	for len(s.stack) > 0 {
		var top = &s.stack[len(s.stack)-1]
		if top.next >= len(top.entries) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		var entry = top.entries[top.next]
		top.next++
		var path = filepath.Join(top.dir, entry.Name())
		info, err := stat(path, entry)
		if err != nil {
			s.err = err
			return false
		}
		if info.IsDir() {
			if s.recursive && !s.visiting(info) {
				if err = s.push(path, info); err != nil {
					s.err = err
					return false
				}
			}
			continue
		}
		if IsReadFile(entry.Name()) {
			s.path = path
			return true
		}
	}
	s.path = ""
	return false
}

// Path is the read file found by the last successful Scan.
func (s *Scanner) Path() string {
	return s.path
}

// Err returns the first error met by the Scanner, nil at a clean end.
func (s *Scanner) Err() error {
	return s.err
}

// Collect drains a new Scanner and returns the read files sorted by path.
func Collect(root string, recursive bool) ([]string, error) {
	var (
		scanner = NewScanner(root, recursive)
		paths   []string
	)
	for scanner.Scan() {
		paths = append(paths, scanner.Path())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	SortPaths(paths)
	return paths, nil
}

// SortPaths orders paths component by component, so "reads/x" sorts
// before "reads.old/x".
func SortPaths(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return lessPath(paths[i], paths[j])
	})
}

func lessPath(a, b string) bool {
	var (
		pa = strings.Split(filepath.ToSlash(a), "/")
		pb = strings.Split(filepath.ToSlash(b), "/")
	)
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}
