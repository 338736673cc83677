package biomarket

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Schema describes the fixed column layout of a table file and how one record
// maps to and from a row. All table access goes through a Schema; there is no
// caching, every operation round-trips to the file system.
type Schema[T any] struct {
	Header []string
	Encode func(T) []string
	Decode func([]string) (T, error)
}

// EnsureExists creates the table file with only the header row if it does not
// exist yet. An existing file is left untouched.
func (s Schema[T]) EnsureExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.Header); err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// ReadAll returns every record of the table, in file order.
// An absent file is not an error: it yields an empty sequence.
func (s Schema[T]) ReadAll(path string) ([]T, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(rows))
	for i, row := range rows {
		rec, err := s.Decode(row)
		if err != nil {
			return nil, &StorageError{Op: "read", Path: path, Err: fmt.Errorf("row %d: %w", i+1, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteAll overwrites the table with header plus the given records, preserving
// their order. The new content is written to a temporary file first and moved
// into place, so a crash mid-write cannot corrupt the previous generation.
func (s Schema[T]) WriteAll(path string, records []T) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := csv.NewWriter(tmp)
	werr := w.Write(s.Header)
	for _, rec := range records {
		if werr != nil {
			break
		}
		werr = w.Write(s.Encode(rec))
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return &StorageError{Op: "write", Path: path, Err: werr}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Append opens the table for appending and writes the one record, preceded by
// the header row when the file is currently empty.
func (s Schema[T]) Append(path string, record T) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &StorageError{Op: "append", Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if info, err := f.Stat(); err != nil {
		return &StorageError{Op: "append", Path: path, Err: err}
	} else if info.Size() == 0 {
		if err := w.Write(s.Header); err != nil {
			return &StorageError{Op: "append", Path: path, Err: err}
		}
	}
	if err := w.Write(s.Encode(record)); err != nil {
		return &StorageError{Op: "append", Path: path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Op: "append", Path: path, Err: err}
	}
	return nil
}

// readRows reads the raw data rows of a table, header excluded.
// Rows keep whatever number of fields they have; callers decide how strict to be.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &StorageError{Op: "read", Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}
