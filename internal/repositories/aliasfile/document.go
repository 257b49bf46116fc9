/*
Package aliasfile persists the alias store as a JSON document and renders it as
a file of shell alias definitions. All file access goes through an afero.Fs.
*/
package aliasfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/ali/internal/adapters/jsoncodec"
	"github.com/spf13/afero"
)

// ErrIO indicates that a file could not be read or written.
var ErrIO = errors.New("file I/O failed")

const (
	tempFilePrefix = ".ali-tmp-"
	filePerm       = 0644
	dirPerm        = 0755
)

// ReadDocument reads and parses the JSON document at path.
func ReadDocument(fs afero.Fs, path string) (any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	doc, err := jsoncodec.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// WriteDocument formats doc and replaces the file at path with it.
func WriteDocument(fs afero.Fs, path string, doc any) error {
	data, err := jsoncodec.Format(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(fs, path, data)
}

// writeFileAtomic writes data to a temp file next to path and renames it over
// path, so a failed write leaves the previous file intact.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: creating directory %s: %w", ErrIO, dir, err)
	}

	tmpFile, err := afero.TempFile(fs, dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %w", ErrIO, dir, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrIO, tmpPath, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("%w: syncing %s: %w", ErrIO, tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, tmpPath, err)
	}
	if err := fs.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrIO, tmpPath, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: renaming %s to %s: %w", ErrIO, tmpPath, path, err)
	}

	success = true
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
