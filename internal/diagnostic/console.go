package diagnostic

import (
	"go/token"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Reporter receives every diagnostic a host decides to surface.
type Reporter interface {
	Report(d *Diagnostic, pos token.Position)
}

// ConsoleReporter writes diagnostics to a logger as soon as they are
// reported.
type ConsoleReporter struct {
	mu      sync.Mutex
	appRoot string
	logger  *log.Logger
	errors  int
	label   *color.Color
}

// NewConsoleReporter writes to w. File names are shortened to start at the
// base name of applicationPath when it is not empty.
func NewConsoleReporter(w io.Writer, applicationPath string) *ConsoleReporter {
	r := &ConsoleReporter{
		logger: log.New(w, "", 0),
		label:  color.New(color.FgRed, color.Bold),
	}
	if applicationPath != "" {
		r.appRoot = filepath.Base(applicationPath)
	}
	return r
}

// Report prints the diagnostic as `error: <position> <message>`.
func (r *ConsoleReporter) Report(d *Diagnostic, pos token.Position) {
	if r == nil || d == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b := strings.Builder{}
	b.WriteString(r.label.Sprint(d.Severity.String() + ":"))
	b.WriteByte(' ')
	if p := formatPosition(pos, r.appRoot); p != "" {
		b.WriteString(p)
		b.WriteByte(' ')
	}
	b.WriteString(d.Message)

	r.logger.Println(b.String())
	if d.Severity == SevError {
		r.errors++
	}
}

// Errors returns how many error diagnostics have been reported so far.
func (r *ConsoleReporter) Errors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// formatPosition creates a human readable string representing a position.
// The filename is localized to the application root when it contains it.
//
// Info                   | Formatting
// -------------------------------------------------
// filename, line, column | filename:line:column
// filename, line         | filename:line
// filename               | filename
// invalid or empty       | ""
func formatPosition(pos token.Position, appRoot string) string {
	if pos.Filename == "" {
		return ""
	}

	name := pos.Filename
	if appRoot != "" {
		split := strings.Split(pos.Filename, string(filepath.Separator))
		for i, segment := range split {
			if segment == appRoot {
				name = strings.Join(split[i:], string(filepath.Separator))
				break
			}
		}
	}

	path := strings.Builder{}
	path.WriteString(name)
	if pos.Line > 0 {
		path.WriteByte(':')
		path.WriteString(strconv.Itoa(pos.Line))
		if pos.Column > 0 {
			path.WriteByte(':')
			path.WriteString(strconv.Itoa(pos.Column))
		}
	}
	return path.String()
}
