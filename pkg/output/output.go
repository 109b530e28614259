// Package output is the file sink for generated payloads: it writes a set
// of named in-memory text payloads under a destination directory and
// reports how many files it wrote.
//
// Writes are fail-fast. Each output file is self-contained and regenerable
// by rerunning, so there is no partial-completion recovery: the first I/O
// error aborts the run.
package output

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/nullsign/nullsign/pkg/errors"
)

// Payloads maps output file names to their contents.
type Payloads map[string][]byte

// Names returns the payload names in deterministic (sorted) order.
func (p Payloads) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFiles writes each payload as a file under dir, creating dir if
// needed. It returns the number of files written. On error the count
// reflects the files written before the failure.
func WriteFiles(dir string, payloads Payloads) (int, error) {
	if err := errors.ValidateDestDir(dir); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create destination %s", dir)
	}

	written := 0
	for _, name := range payloads.Names() {
		if err := errors.ValidateOutputName(name); err != nil {
			return written, err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, payloads[name], 0644); err != nil {
			return written, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		written++
	}
	return written, nil
}
