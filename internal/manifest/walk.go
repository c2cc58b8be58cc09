package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Suffix is the file name suffix the walker looks for.
const Suffix = ".decl.yaml"

// Walk finds every declaration manifest under dir, parses them, and calls
// visit once per file in sorted-path order. Parsing is parallel; delivery is
// sequential and deterministic, because later declarations overwrite earlier
// same-named ones and that ordering must be reproducible.
//
// dir may also name a single manifest file.
func Walk(dir string, visit func(module string, decls []Decl) error) error {
	files, err := listManifests(dir)
	if err != nil {
		return err
	}

	parsed := make([]*File, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			f, err := parseFile(path)
			if err != nil {
				return err
			}
			parsed[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, f := range parsed {
		module := f.Module
		if module == "" {
			module = moduleFromPath(files[i])
		}
		if err := visit(module, f.Decls); err != nil {
			return err
		}
	}
	return nil
}

// listManifests returns the sorted list of manifest paths under dir.
func listManifests(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), Suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func parseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: failed to parse manifest: %w", path, err)
	}
	for i := range f.Decls {
		if f.Decls[i].Name == "" {
			return nil, fmt.Errorf("%s: decl %d has no name", path, i)
		}
		switch f.Decls[i].Kind {
		case DeclFunction, DeclStruct, DeclEnum, DeclAlias:
		default:
			return nil, fmt.Errorf("%s: decl %q has unknown kind %q", path, f.Decls[i].Name, f.Decls[i].Kind)
		}
	}
	return &f, nil
}

// moduleFromPath derives a module name from the manifest file name:
// geometry.decl.yaml -> geometry.
func moduleFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Suffix)
}
