package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/emopath/internal/graph"
)

// Save writes g to path. The file is written beside the target and renamed
// into place so a failed save never leaves a truncated map behind.
func Save(g *graph.Graph, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, g); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	committed = true
	return nil
}

// Load decodes path into g. A missing file is not an error: found is false
// and g is untouched, signalling there is no saved state.
func Load(g *graph.Graph, path string) (found bool, rep DecodeReport, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, rep, nil
		}
		return false, rep, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rep, err = Decode(f, g)
	if err != nil {
		return true, rep, err
	}
	return true, rep, nil
}
