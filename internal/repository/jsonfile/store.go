// Package jsonfile stores the weekly state as a flat JSON object mapping task
// names to accumulated hours.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"week-tracker/internal/domain"
	"week-tracker/internal/errors"
	"week-tracker/internal/logging"
	"week-tracker/internal/validation"
)

// hoursCheck rejects stored hours that are negative, non-finite or too large
// for a duration.
var hoursCheck = validation.NewValidator()

const (
	fileMode = 0o644
	indent   = "    "
)

// Store is a JSON file backed state store.
type Store struct {
	path    string
	dirPerm os.FileMode
}

// New returns a store for path. Nothing is touched on disk until Load or Save.
func New(path string, dirPerm os.FileMode) *Store {
	return &Store{path: path, dirPerm: dirPerm}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Close is a no-op; the file is only held open during Load and Save.
func (s *Store) Close() error {
	return nil
}

// Load reads the state file. A missing file is an all-zero state and tasks
// absent from the file stay at zero. Keys that are not configured tasks are
// skipped.
func (s *Store) Load(ctx context.Context, targets *domain.TargetSet) (*domain.CurrentState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state := domain.NewCurrentState(targets)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debugf("state file %s does not exist, starting from zero\n", s.path)
			return state, nil
		}
		return nil, errors.NewStateError(s.path, "cannot be read", err)
	}

	hours, err := decode(data)
	if err != nil {
		return nil, errors.NewStateError(s.path, "is not a JSON object of task hours", err)
	}

	for name, h := range hours {
		if !state.Has(name) {
			logging.Debugf("ignoring unknown task %q in %s\n", name, s.path)
			continue
		}
		if !hoursCheck.IsNonNegativeHours(h) {
			return nil, errors.NewStateError(s.path, "task "+name+" has invalid hours "+domain.FormatHours(h), nil).
				WithContext("task", name)
		}
		state.Set(name, domain.HoursToDuration(h))
	}

	return state, nil
}

// Save writes the state in configured task order. The file is replaced
// atomically: the new content is written to a temporary file in the same
// directory, synced and renamed over the old one.
func (s *Store) Save(ctx context.Context, state *domain.CurrentState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(state)
	if err != nil {
		return errors.NewPersistenceError("encode", s.path, err)
	}

	if err := writeAtomic(s.path, data, s.dirPerm); err != nil {
		return errors.NewPersistenceError("write", s.path, err)
	}

	logging.Debugf("wrote %d tasks to %s\n", len(state.Tasks()), s.path)
	return nil
}

func decode(data []byte) (map[string]float64, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}
	if raw == nil {
		return nil, fmt.Errorf("expected an object, got null")
	}

	out := make(map[string]float64, len(raw))
	for name, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("task %q: %v is not a number", name, v)
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", name, err)
		}
		out[name] = f
	}
	return out, nil
}

func encode(state *domain.CurrentState) ([]byte, error) {
	var buf bytes.Buffer
	tasks := state.Tasks()

	if len(tasks) == 0 {
		return []byte("{}\n"), nil
	}

	buf.WriteString("{\n")
	for i, name := range tasks {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.WriteString(indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.WriteString(domain.FormatHours(domain.DurationToHours(state.Get(name))))
		if i < len(tasks)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte, dirPerm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the rename. Some platforms cannot sync a directory handle,
// so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
