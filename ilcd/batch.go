package ilcd

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// defaultSuffixes are the file suffixes considered dataset files when
// scanning directories and archives.
var defaultSuffixes = []string{".xml", ".ilcd"}

func matchSuffixes(suffixes []string) func(string) bool {
	if len(suffixes) == 0 {
		suffixes = defaultSuffixes
	}
	return func(name string) bool {
		return lo.SomeBy(suffixes, func(s string) bool {
			return strings.HasSuffix(name, s)
		})
	}
}

// A ParseResult is the outcome of parsing one file of a batch. A
// failed member carries its error; it does not abort the batch.
type ParseResult struct {
	Path    string
	DataSet DataSet
	Err     error
}

// A ValidateResult is the outcome of validating one file of a batch.
// Diagnostics lists schema violations; Err is set when the member
// could not be read or validated at all.
type ValidateResult struct {
	Path        string
	Diagnostics []Diagnostic
	Err         error
}

// Valid reports whether the member was validated and free of schema
// violations.
func (r ValidateResult) Valid() bool { return r.Err == nil && len(r.Diagnostics) == 0 }

func (lib *Library) parseAs(kind Kind, r io.Reader) (DataSet, error) {
	root, err := lib.parse(kind, r)
	if err != nil {
		return nil, err
	}
	c, err := ResolverFor(kind).Resolve(root.Local)
	if err != nil {
		return nil, err
	}
	return c.New(root).(DataSet), nil
}

// ParseDir parses every dataset file of one kind directly under dir,
// in lexical filename order. Files whose suffix is not in suffixes
// (default .xml and .ilcd) are skipped. Failures are reported per
// member.
func (lib *Library) ParseDir(kind Kind, dir string, suffixes ...string) ([]ParseResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	match := matchSuffixes(suffixes)
	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && match(e.Name())
	})
	results := make([]ParseResult, 0, len(files))
	for _, e := range files {
		path := filepath.Join(dir, e.Name())
		ds, err := lib.ParseFileAs(kind, path)
		if err != nil {
			lib.logf("ilcd: parse %s: %v", path, err)
		}
		results = append(results, ParseResult{Path: path, DataSet: ds, Err: err})
	}
	return results, nil
}

// ParseZip parses every dataset file of one kind in a zip archive, in
// archive order.
func (lib *Library) ParseZip(kind Kind, path string, suffixes ...string) ([]ParseResult, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	match := matchSuffixes(suffixes)
	members := lo.Filter(archive.File, func(f *zip.File, _ int) bool {
		return !f.FileInfo().IsDir() && match(f.Name)
	})
	results := make([]ParseResult, 0, len(members))
	for _, f := range members {
		ds, err := lib.parseZipMember(kind, f)
		if err != nil {
			lib.logf("ilcd: parse %s: %v", f.Name, err)
		}
		results = append(results, ParseResult{Path: f.Name, DataSet: ds, Err: err})
	}
	return results, nil
}

func (lib *Library) parseZipMember(kind Kind, f *zip.File) (DataSet, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return lib.parseAs(kind, rc)
}

// ParseFileAs parses one dataset file of the given kind, returning the
// typed root behind the DataSet interface.
func (lib *Library) ParseFileAs(kind Kind, path string) (DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lib.parseAs(kind, f)
}

// ValidateDir validates every dataset file of one kind directly under
// dir, in lexical filename order.
func (lib *Library) ValidateDir(kind Kind, dir string, suffixes ...string) ([]ValidateResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	match := matchSuffixes(suffixes)
	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && match(e.Name())
	})
	results := make([]ValidateResult, 0, len(files))
	for _, e := range files {
		path := filepath.Join(dir, e.Name())
		diags, err := lib.ValidateFile(kind, path)
		if err != nil {
			lib.logf("ilcd: validate %s: %v", path, err)
		}
		results = append(results, ValidateResult{Path: path, Diagnostics: diags, Err: err})
	}
	return results, nil
}

// ValidateZip validates every dataset file of one kind in a zip
// archive, in archive order.
func (lib *Library) ValidateZip(kind Kind, path string, suffixes ...string) ([]ValidateResult, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()
	match := matchSuffixes(suffixes)
	members := lo.Filter(archive.File, func(f *zip.File, _ int) bool {
		return !f.FileInfo().IsDir() && match(f.Name)
	})
	results := make([]ValidateResult, 0, len(members))
	for _, f := range members {
		diags, err := lib.validateZipMember(kind, f)
		if err != nil {
			lib.logf("ilcd: validate %s: %v", f.Name, err)
		}
		results = append(results, ValidateResult{Path: f.Name, Diagnostics: diags, Err: err})
	}
	return results, nil
}

func (lib *Library) validateZipMember(kind Kind, f *zip.File) ([]Diagnostic, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	doc, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return lib.validate(kind, f.Name, doc)
}
