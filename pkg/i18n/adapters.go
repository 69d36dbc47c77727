package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every catalog file of one directory in an fs.FS. It serves
// embed.FS catalogs compiled into the binary as well as os.DirFS overrides.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface. Files are merged in
// directory order; a later file overrides keys of an earlier one.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	allTranslations := make(map[string]map[string]any)
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		if err := a.processFile(ctx, path.Join(a.dir, entry.Name()), allTranslations); err != nil {
			return nil, err
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoTranslationFiles, a.dir)
	}

	return allTranslations, nil
}

// processFile parses a single file and merges its translations into allTranslations.
func (a *FSAdapter) processFile(ctx context.Context, filePath string, allTranslations map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	if len(content) == 0 {
		return fmt.Errorf("%w: translation file '%s' is empty", ErrFailedToParseFile, filePath)
	}

	fileTranslations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	for lang, translations := range fileTranslations {
		if allTranslations[lang] == nil {
			allTranslations[lang] = make(map[string]any)
		}
		maps.Copy(allTranslations[lang], translations)
	}

	return nil
}
