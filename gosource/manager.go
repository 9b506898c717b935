// Package gosource expands annotations written in the comments of Go source
// files. Loaded packages are rewritten in place as DST trees, and the changes
// are written out as a patch.
package gosource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver"
	"github.com/dave/dst/decorator/resolver/gopackages"
	"github.com/dave/dst/decorator/resolver/guess"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/tinoworks/tinomacro/expansion"
	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"github.com/tinoworks/tinomacro/internal/render"
	"github.com/tinoworks/tinomacro/internal/syntax"
	"github.com/tinoworks/tinomacro/internal/util"
)

// PackageState contains the state of expansion within a single package.
type PackageState struct {
	pkg      *decorator.Package
	nodes    map[syntax.NodeID]dst.Node // nodes diagnostics are attributed to
	equal    map[string]bool            // types that already declare the equality method
	modified map[*dst.File]bool
}

// Stats counts what a Manager did.
type Stats struct {
	Sites       int // annotations dispatched to a rule
	Generated   int // generated declarations, comments and expressions spliced in
	Diagnostics int
}

// Manager maintains state relevant to expansion across all packages.
type Manager struct {
	cfg      config.Configuration
	expander *expansion.Expander
	reporter diagnostic.Reporter
	logger   *log.Logger

	userAppPath string // path to the user's application as provided by the user
	diffFile    string

	packages map[string]*PackageState // stores state on packages by ID
	nextID   syntax.NodeID
	stats    Stats
}

// NewManager prepares the expansion of pkgs with the Go dialect of cfg. A nil
// logger discards debug output.
func NewManager(pkgs []*decorator.Package, cfg config.Configuration, reporter diagnostic.Reporter, diffFile, userAppPath string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	manager := &Manager{
		cfg:         cfg,
		expander:    expansion.NewExpander(cfg, render.NewGo(cfg)),
		reporter:    reporter,
		logger:      logger,
		userAppPath: userAppPath,
		diffFile:    diffFile,
		packages:    map[string]*PackageState{},
	}

	for _, pkg := range pkgs {
		state := &PackageState{
			pkg:      pkg,
			nodes:    map[syntax.NodeID]dst.Node{},
			equal:    map[string]bool{},
			modified: map[*dst.File]bool{},
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				if fn, ok := decl.(*dst.FuncDecl); ok && fn.Name.Name == cfg.Go.EqualMethod {
					if name := util.ReceiverTypeName(fn); name != "" {
						state.equal[name] = true
					}
				}
			}
		}
		manager.packages[pkg.ID] = state
	}

	return manager
}

// Stats returns the counters of every expansion run so far.
func (m *Manager) Stats() Stats {
	return m.stats
}

// ExpandPackages expands every annotation of every loaded file. Diagnostics
// are sent to the reporter and never stop the expansion of other sites; the
// returned error joins the failures of the host itself.
func (m *Manager) ExpandPackages() error {
	var errs []error
	for _, id := range m.packageIDs() {
		state := m.packages[id]
		for _, file := range state.pkg.Syntax {
			if err := m.expandFile(state, file); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) packageIDs() []string {
	ids := make([]string, 0, len(m.packages))
	for id := range m.packages {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// register assigns a NodeID to node so that diagnostics can be located.
func (m *Manager) register(state *PackageState, node dst.Node) syntax.NodeID {
	m.nextID++
	state.nodes[m.nextID] = node
	return m.nextID
}

// report forwards a diagnostic together with the position of its node.
func (m *Manager) report(state *PackageState, d *diagnostic.Diagnostic) {
	m.stats.Diagnostics++
	if m.reporter == nil {
		return
	}

	pos := util.Position(state.nodes[d.Node], state.pkg)
	if pos == nil {
		m.reporter.Report(d, emptyPosition)
		return
	}
	m.reporter.Report(d, *pos)
}

// CreateDiffFile creates or truncates the diff file.
func (m *Manager) CreateDiffFile() error {
	f, err := os.Create(m.diffFile)
	if err != nil {
		return err
	}
	return f.Close()
}

// ModifiedFiles returns how many files hold generated code.
func (m *Manager) ModifiedFiles() int {
	n := 0
	for _, state := range m.packages {
		n += len(state.modified)
	}
	return n
}

// WriteDiff appends a patch for every modified file to the diff file.
func (m *Manager) WriteDiff() error {
	f, err := os.OpenFile(m.diffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	absAppPath, err := filepath.Abs(m.userAppPath)
	if err != nil {
		return err
	}

	for _, id := range m.packageIDs() {
		state := m.packages[id]
		r := decorator.NewRestorerWithImports(state.pkg.PkgPath, importResolver(state.pkg.Dir))

		for _, file := range state.pkg.Syntax {
			if !state.modified[file] {
				continue
			}

			path := state.pkg.Decorator.Filenames[file]
			originalFile, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			// what this file will be named in the diff file
			diffFileName, err := filepath.Rel(absAppPath, path)
			if err != nil {
				return err
			}

			modifiedFile := bytes.Buffer{}
			if err := r.Fprint(&modifiedFile, file); err != nil {
				return fmt.Errorf("printing %s: %w", diffFileName, err)
			}

			patch := godiffpatch.GeneratePatch(diffFileName, string(originalFile), modifiedFile.String())
			if _, err := f.WriteString(patch); err != nil {
				return err
			}
		}
	}
	return nil
}

// fallbackResolver asks each resolver in turn for the name of a package.
type fallbackResolver []resolver.RestorerResolver

func (r fallbackResolver) ResolvePackage(path string) (string, error) {
	var errs []error
	for _, res := range r {
		name, err := res.ResolvePackage(path)
		if err == nil {
			return name, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

// importResolver resolves import names with the packages visible from dir,
// and guesses the name of packages that are not downloaded yet, such as a
// runtime package the generated code is the first to import.
func importResolver(dir string) resolver.RestorerResolver {
	return fallbackResolver{gopackages.New(dir), guess.New()}
}
