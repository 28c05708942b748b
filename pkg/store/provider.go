// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package store

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	// DefaultMaxFileSize is the default maximum size of an external data file (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024

	sourceEmbedded = "embedded"
	sourceExternal = "external"
)

// DataProvider abstracts access to the per-year data files.
type DataProvider interface {
	// ReadFile reads a file by name, relative to the data root.
	ReadFile(name string) ([]byte, error)

	// WalkDir walks the data tree rooted at root.
	WalkDir(root string, fn fs.WalkDirFunc) error

	// Source describes where the data comes from (for logging).
	Source() string
}

// FSDataProvider serves data files from an fs.FS.
type FSDataProvider struct {
	fsys   fs.FS
	source string
}

// NewFSDataProvider creates a provider over fsys.
func NewFSDataProvider(fsys fs.FS, source string) *FSDataProvider {
	return &FSDataProvider{fsys: fsys, source: source}
}

// NewEmbeddedDataProvider creates a provider over the data set compiled
// into the binary.
func NewEmbeddedDataProvider() *FSDataProvider {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// data/ is part of the embed pattern, fs.Sub cannot fail here
		panic(fmt.Sprintf("embedded data: %v", err))
	}
	return NewFSDataProvider(sub, sourceEmbedded)
}

// ReadFile reads a file from the underlying filesystem.
func (p *FSDataProvider) ReadFile(name string) ([]byte, error) {
	slog.Debug("reading data file", "name", name, "source", p.source)
	return fs.ReadFile(p.fsys, name)
}

// WalkDir walks the underlying filesystem.
func (p *FSDataProvider) WalkDir(root string, fn fs.WalkDirFunc) error {
	if root == "" {
		root = "."
	}
	return fs.WalkDir(p.fsys, root, fn)
}

// Source returns the provider description.
func (p *FSDataProvider) Source() string {
	return p.source
}

// DirProviderConfig configures an external data directory.
type DirProviderConfig struct {
	// Dir is the directory holding {year}.json files.
	Dir string

	// MaxFileSize is the maximum allowed file size in bytes (default: 10MB).
	MaxFileSize int64

	// AllowSymlinks allows symlinks in the directory (default: false).
	AllowSymlinks bool
}

// NewDirDataProvider creates a provider over an external directory.
// Returns an error if:
// - the directory doesn't exist or is not a directory
// - a data file is a symlink and symlinks are not allowed
// - a data file exceeds the size limit
func NewDirDataProvider(config DirProviderConfig) (*FSDataProvider, error) {
	slog.Debug("creating directory data provider",
		"dir", config.Dir,
		"max_file_size", config.MaxFileSize,
		"allow_symlinks", config.AllowSymlinks)

	if config.MaxFileSize == 0 {
		config.MaxFileSize = DefaultMaxFileSize
	}

	info, err := os.Stat(config.Dir)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("data directory not found: %s", config.Dir), err)
	}
	if !info.IsDir() {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("data path is not a directory: %s", config.Dir))
	}

	entries, err := os.ReadDir(config.Dir)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("failed to read data directory: %s", config.Dir), err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(config.Dir, e.Name())

		if !config.AllowSymlinks && e.Type()&os.ModeSymlink != 0 {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("symlinks not allowed: %s", e.Name()))
		}

		fi, statErr := os.Stat(path)
		if statErr != nil {
			return nil, fmt.Errorf("failed to stat file: %w", statErr)
		}
		if fi.Size() > config.MaxFileSize {
			return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("file too large (%d bytes, max %d): %s", fi.Size(), config.MaxFileSize, e.Name()))
		}
		slog.Debug("discovered data file", "path", e.Name(), "size", fi.Size())
	}

	return NewFSDataProvider(os.DirFS(config.Dir), sourceExternal+":"+config.Dir), nil
}
