// SPDX-License-Identifier: MIT
// Package: sink
//
// Purpose:
//   - Embedded key/value sink on badger.
//
// Encoding:
//   - key   = probe + 0x00 + case
//   - value = rows (uint32 LE) | cols (uint32 LE) | integral (1 byte) |
//     rows*cols float64 bits (LE, row-major)
//   - Write-once is checked and written inside one read-write transaction.

package sink

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/armaexpected/matrix"
)

const valueHeaderLen = 9

// BadgerConfig configures a Badger sink.
type BadgerConfig struct {
	// Path is the database directory; ignored when InMemory is set.
	Path string
	// InMemory keeps everything in RAM (tests, dry runs).
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// Logger receives badger's internal log lines; nil silences them.
	Logger *zap.Logger
}

// Badger stores results in a badger database.
type Badger struct {
	db *badger.DB
}

// zapBadgerLogger adapts zap to badger.Logger.
type zapBadgerLogger struct{ s *zap.SugaredLogger }

func (l zapBadgerLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l zapBadgerLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l zapBadgerLogger) Infof(format string, args ...interface{})    { l.s.Debugf(format, args...) }
func (l zapBadgerLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }

// OpenBadger opens (creating if needed) a badger-backed sink.
func OpenBadger(cfg BadgerConfig) (*Badger, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("OpenBadger: empty path for a persistent database: %w", ErrInvalidKey)
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("OpenBadger: create %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(zapBadgerLogger{s: cfg.Logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("OpenBadger: %w", err)
	}

	return &Badger{db: db}, nil
}

func badgerKey(k Key) []byte {
	out := make([]byte, 0, len(k.Probe)+1+len(k.Case))
	out = append(out, k.Probe...)
	out = append(out, 0)

	return append(out, k.Case...)
}

func splitBadgerKey(raw []byte) (Key, error) {
	i := bytes.IndexByte(raw, 0)
	if i < 0 {
		return Key{}, fmt.Errorf("key %q: %w", raw, ErrMalformed)
	}

	return Key{Probe: string(raw[:i]), Case: string(raw[i+1:])}, nil
}

func encodeValue(m *matrix.Dense, integral bool) []byte {
	data := m.RowMajor()
	out := make([]byte, valueHeaderLen+8*len(data))
	binary.LittleEndian.PutUint32(out[0:], uint32(m.Rows()))
	binary.LittleEndian.PutUint32(out[4:], uint32(m.Cols()))
	if integral {
		out[8] = 1
	}
	for k, v := range data {
		binary.LittleEndian.PutUint64(out[valueHeaderLen+8*k:], math.Float64bits(v))
	}

	return out
}

func decodeValue(raw []byte) (*matrix.Dense, bool, error) {
	if len(raw) < valueHeaderLen {
		return nil, false, fmt.Errorf("value of %d bytes: %w", len(raw), ErrMalformed)
	}
	rows := int(binary.LittleEndian.Uint32(raw[0:]))
	cols := int(binary.LittleEndian.Uint32(raw[4:]))
	body := raw[valueHeaderLen:]
	if len(body) != 8*rows*cols {
		return nil, false, fmt.Errorf("value %dx%d with %d data bytes: %w", rows, cols, len(body), ErrMalformed)
	}
	data := make([]float64, rows*cols)
	for k := range data {
		data[k] = math.Float64frombits(binary.LittleEndian.Uint64(body[8*k:]))
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, false, err
	}

	return m, raw[8] == 1, nil
}

// Save writes r unless its key already exists.
func (b *Badger) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate("Badger.Save", r); err != nil {
		return err
	}
	k := r.Key()
	key := badgerKey(k)

	err := b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrAlreadyPersisted
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		return txn.Set(key, encodeValue(r.Values, r.Integral))
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return fmt.Errorf("Badger.Save %s: %w", k, ErrClosed)
	}
	if err != nil {
		return fmt.Errorf("Badger.Save %s: %w", k, err)
	}

	return nil
}

// Load returns the result saved under k.
func (b *Badger) Load(k Key) (Result, error) {
	var out Result
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(k))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(raw []byte) error {
			m, integral, err := decodeValue(raw)
			if err != nil {
				return err
			}
			out = Result{Probe: k.Probe, Case: k.Case, Values: m, Integral: integral}

			return nil
		})
	})
	if err != nil {
		return Result{}, fmt.Errorf("Badger.Load %s: %w", k, err)
	}

	return out, nil
}

// Each calls fn for every stored result in key order; iteration stops at
// the first error fn returns.
func (b *Badger) Each(fn func(Result) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			k, err := splitBadgerKey(item.KeyCopy(nil))
			if err != nil {
				return err
			}
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			m, integral, err := decodeValue(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			if err := fn(Result{Probe: k.Probe, Case: k.Case, Values: m, Integral: integral}); err != nil {
				return err
			}
		}

		return nil
	})
}

// Close closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}
