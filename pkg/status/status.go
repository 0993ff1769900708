// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package status

import (
	"context"
	"os"
	"path/filepath"

	"github.com/walteh/permpatch/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is the classification of one file in one run
type Outcome int

const (
	OutcomeUnknown        Outcome = iota
	Applied                       // content changed and was written back
	SkippedAlreadyPatched         // every guard marker was already present
	SkippedNoChange               // no step found an anchor
	SkippedMissing                // the file does not exist
	Failed                        // read, decode or write fault
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedAlreadyPatched:
		return "already patched"
	case SkippedNoChange:
		return "no change"
	case SkippedMissing:
		return "not found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 🪣 Bucket is the summary counter an outcome is added to
type Bucket int

const (
	BucketApplied Bucket = iota
	BucketSkipped
	BucketFailed
)

// Bucket returns the summary bucket of o. Unknown outcomes count as failed.
func (o Outcome) Bucket() Bucket {
	switch o {
	case Applied:
		return BucketApplied
	case SkippedAlreadyPatched, SkippedNoChange, SkippedMissing:
		return BucketSkipped
	default:
		return BucketFailed
	}
}

// 📄 Result describes what happened to one manifest entry
type Result struct {
	Path    string        // Path relative to the base dir
	Params  config.Params // Params the file was patched with
	Outcome Outcome       // Final classification
	Err     error         // Cause, set only when Outcome is Failed
	Steps   []string      // Steps that changed the text
	Diff    string        // Unified diff, when requested
}

// 💾 FileManager is the filesystem the patch driver reads and writes
type FileManager interface {
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager on the local disk under a base directory
type Manager struct {
	baseDir string
}

var _ FileManager = (*Manager)(nil)

// 🏭 NewManager creates a new file manager rooted at baseDir
func NewManager(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// BaseDir returns the directory all paths are relative to.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		if info.IsDir() {
			return false, errors.Errorf("%s is a directory", path)
		}
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces the whole file through a temp file and rename,
// keeping the permissions of the file it replaces.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
