package basic

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/vbtools/vbp/basic/parser"
)

// Result is the outcome of loading one source file. Exactly one of
// Module and Class is set when Err is nil.
type Result struct {
	Path   string
	Module *ModuleFile
	Class  *ClassFile
	Err    error
}

// Failures returns the parse failures of whichever file kind was
// loaded, nil when the file could not be read at all.
func (r Result) Failures() []parser.Failure {
	switch {
	case r.Module != nil:
		return r.Module.Failures
	case r.Class != nil:
		return r.Class.Failures
	}
	return nil
}

// Name returns the VB_Name of the loaded file, empty when unknown.
func (r Result) Name() string {
	switch {
	case r.Module != nil:
		return r.Module.Name
	case r.Class != nil:
		return r.Class.Name
	}
	return ""
}

// Loader reads .bas and .cls sources from a filesystem and parses them.
// Files are parsed concurrently; the parser shares no mutable state
// between calls.
type Loader struct {
	fs      afero.Fs
	workers int
}

// NewLoader builds a loader over fsys. Pass afero.NewOsFs() for the
// real filesystem.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys, workers: 8}
}

// Load walks root, parses every .bas and .cls file beneath it and
// returns the results sorted by path. Unreadable files become results
// with Err set; walk errors on the root itself abort the load.
func (l *Loader) Load(root string) ([]Result, error) {
	var paths []string
	err := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".bas", ".cls":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = l.loadOne(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func (l *Loader) loadOne(path string) Result {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	if strings.EqualFold(filepath.Ext(path), ".cls") {
		return Result{Path: path, Class: ParseClassFile(path, string(data))}
	}
	return Result{Path: path, Module: ParseModuleFile(path, string(data))}
}
