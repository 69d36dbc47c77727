package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/anketa/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()
		data, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("returns data", func(t *testing.T) {
		t.Parallel()
		src := map[string]map[string]any{"en": {"a": "b"}}
		data, err := (&i18n.MapAdapter{Data: src}).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, src, data)
	})
}

func TestNewFSAdapter(t *testing.T) {
	t.Parallel()

	assert.Nil(t, i18n.NewFSAdapter(nil, fstest.MapFS{}, "locales"))
	assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	assert.NotNil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, ""))
}

func TestFSAdapterLoad(t *testing.T) {
	t.Parallel()

	t.Run("merges files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/a.yaml":     {Data: []byte("en:\n  hello: Hello\n  bye: Bye\n")},
			"locales/b.yml":      {Data: []byte("en:\n  bye: Goodbye\nru:\n  hello: Привет\n")},
			"locales/readme.txt": {Data: []byte("ignored")},
			"locales/sub/c.yaml": {Data: []byte("en:\n  hello: nested\n")},
		}

		data, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", data["en"]["hello"])
		assert.Equal(t, "Goodbye", data["en"]["bye"])
		assert.Equal(t, "Привет", data["ru"]["hello"])
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "locales").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("no catalog files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/readme.txt": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/en.yaml": {Data: nil}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("broken yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/en.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, ".").Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
		require.ErrorIs(t, err, context.Canceled)
	})
}
