// SPDX-License-Identifier: MIT
// Package: sink
//
// Purpose:
//   - File tree sink: one ASCII matrix file per result.
//
// Layout:
//   - <dir>/<probe>(<case>).mat, created with O_EXCL so a key is written once.
//   - Raw layout (default): one line per row, elements separated by a single
//     space. Reals use 16-digit scientific notation, integral results plain
//     integers, non-finite values Inf, -Inf and NaN.
//   - Header layout (WithArmaHeader): "ARMA_MAT_TXT_FN008" (reals) or
//     "ARMA_MAT_TXT_IU008" (integral) then "<rows> <cols>" before the rows.
//     Only this layout preserves the shape of an empty result.

package sink

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/armaexpected/matrix"
)

const (
	headerReal     = "ARMA_MAT_TXT_FN008"
	headerIntegral = "ARMA_MAT_TXT_IU008"
	fileExt        = ".mat"
)

// Files writes results below a directory.
type Files struct {
	dir    string
	header bool
	perm   os.FileMode
}

// FilesOption customizes a Files sink.
type FilesOption func(*Files)

// WithArmaHeader writes the Armadillo text header before the values.
func WithArmaHeader() FilesOption {
	return func(f *Files) { f.header = true }
}

// WithFileMode sets the permission bits of created files (default 0o644).
// Panics on a mode with bits outside 0o777.
func WithFileMode(perm os.FileMode) FilesOption {
	if perm&^0o777 != 0 {
		panic(fmt.Sprintf("sink: WithFileMode(%v)", perm))
	}

	return func(f *Files) { f.perm = perm }
}

// NewFiles creates dir if needed and returns a sink writing into it.
func NewFiles(dir string, opts ...FilesOption) (*Files, error) {
	if dir == "" {
		return nil, fmt.Errorf("NewFiles: empty directory: %w", ErrInvalidKey)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("NewFiles: create %s: %w", dir, err)
	}
	f := &Files{dir: dir, perm: 0o644}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Path returns the file a result with the given key is written to.
func (f *Files) Path(k Key) string {
	return filepath.Join(f.dir, k.String()+fileExt)
}

// Save writes r to its own file. An existing file for the key yields
// ErrAlreadyPersisted; a failed write removes the partial file.
func (f *Files) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate("Files.Save", r); err != nil {
		return err
	}
	k := r.Key()
	if strings.ContainsAny(k.String(), `/\`) || strings.ContainsRune(k.String(), 0) {
		return fmt.Errorf("Files.Save %q: %w", k.String(), ErrInvalidKey)
	}

	path := f.Path(k)
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.perm)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("Files.Save %s: %w", k, ErrAlreadyPersisted)
	}
	if err != nil {
		return fmt.Errorf("Files.Save %s: %w", k, err)
	}

	w := bufio.NewWriter(fh)
	werr := WriteMatrix(w, r.Values, r.Integral, f.header)
	if werr == nil {
		werr = w.Flush()
	}
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)

		return fmt.Errorf("Files.Save %s: %w", k, werr)
	}

	return nil
}

// Load reads back the result saved under k.
func (f *Files) Load(k Key) (*matrix.Dense, error) {
	fh, err := os.Open(f.Path(k))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("Files.Load %s: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Files.Load %s: %w", k, err)
	}
	defer fh.Close()

	m, err := ReadMatrix(fh)
	if err != nil {
		return nil, fmt.Errorf("Files.Load %s: %w", k, err)
	}

	return m, nil
}

// Close is a no-op; every Save closes its own file.
func (f *Files) Close() error { return nil }

// formatValue renders one element.
func formatValue(v float64, integral bool) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case integral:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatFloat(v, 'e', 16, 64)
	}
}

// WriteMatrix writes m in the raw layout, preceded by the Armadillo text
// header when header is set.
func WriteMatrix(w io.Writer, m *matrix.Dense, integral, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		tag := headerReal
		if integral {
			tag = headerIntegral
		}
		fmt.Fprintf(bw, "%s\n%d %d\n", tag, m.Rows(), m.Cols())
	}
	data := m.RowMajor()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatValue(data[i*m.Cols()+j], integral))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadMatrix parses either layout written by WriteMatrix. A raw file with no
// rows yields a 0×0 matrix.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		rows, cols   int
		wantR, wantC int
		data         []float64
		declared     bool
		sawFirstLine bool
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !sawFirstLine {
			sawFirstLine = true
			if line == headerReal || line == headerIntegral {
				if !sc.Scan() {
					return nil, fmt.Errorf("ReadMatrix: missing shape line: %w", ErrMalformed)
				}
				if _, err := fmt.Sscanf(sc.Text(), "%d %d", &wantR, &wantC); err != nil {
					return nil, fmt.Errorf("ReadMatrix: shape line %q: %w", sc.Text(), ErrMalformed)
				}
				declared = true

				continue
			}
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("ReadMatrix: row %d has %d values, want %d: %w", rows, len(fields), cols, ErrMalformed)
		}
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadMatrix: value %q: %w", s, ErrMalformed)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}

	if declared {
		if wantR*wantC == 0 && rows == 0 {
			return matrix.NewDense(wantR, wantC)
		}
		if rows != wantR || cols != wantC {
			return nil, fmt.Errorf("ReadMatrix: header %dx%d, body %dx%d: %w", wantR, wantC, rows, cols, ErrMalformed)
		}
	}

	return matrix.NewDenseFrom(rows, cols, data)
}
