package manifest_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/tint/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	monokaiContent = "foreground = #ffcb00\nbackground = #072448\n"
	monokaiDigest  = "22d0c6e7e72a7ddefb6bcb93edd4ae29123864c0b4c0986e79cc370e3e2dbea2"
	darkContent    = "background = #1e1e1e\n"
	darkDigest     = "4d79d9e5625855efe8e5f729b19ec0279713ea1526f9aa743ec50d4ff37a14ef"
)

// writeThemes creates a themes directory containing the given files plus
// a MANIFEST with the given content, and returns both paths.
func writeThemes(t *testing.T, files map[string]string, manifestContent string) (themesDir, manifestPath string) {
	t.Helper()

	themesDir = t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(themesDir, name), []byte(content), 0o644))
	}
	manifestPath = filepath.Join(themesDir, "MANIFEST")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestContent), 0o644))
	return themesDir, manifestPath
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	t.Run("returns true for matching digest", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+monokaiDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("returns false for digest mismatch", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+darkDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("digest comparison is case sensitive", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+strings.ToUpper(monokaiDigest)+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returns false for missing theme file without reading manifest", func(t *testing.T) {
		t.Parallel()

		// The manifest is malformed; if Verify read it the call would
		// fail with ErrFormat instead of a soft false.
		dir, manifestPath := writeThemes(t, nil, "garbage line with three fields\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "absent.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returns false for unopenable manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "monokai.theme"), []byte(monokaiContent), 0o644))

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), filepath.Join(dir, "MANIFEST"))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returns false when theme is not in manifest", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"other.theme "+darkDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("matches by name even when digest matches another entry", func(t *testing.T) {
		t.Parallel()

		// The recorded digest is exactly the theme file's digest, but
		// under a different name. Verification must not match on it.
		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"renamed.theme "+monokaiDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"\n\ndark.theme "+darkDigest+"\n\nmonokai.theme "+monokaiDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fails on malformed line reached during scan", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"only-one-field\nmonokai.theme "+monokaiDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrFormat)
		assert.Contains(t, err.Error(), "line 1")
		assert.False(t, ok)
	})

	t.Run("never parses lines after the match", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+monokaiDigest+"\nthis line is garbage\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cleans the target path before comparing", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+monokaiDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		ok, err := v.Verify(filepath.Join(dir, ".", "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("logs soft failures through the injected logger", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"other.theme "+darkDigest+"\n")

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		v := manifest.NewVerifier(dir, manifest.WithLogger(logger))
		ok, err := v.Verify(filepath.Join(dir, "monokai.theme"), manifestPath)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "Theme not found in manifest")
	})
}

func TestVerifier_VerifyAll(t *testing.T) {
	t.Parallel()

	t.Run("returns one result per entry in manifest order", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{
				"monokai.theme": monokaiContent,
				"dark.theme":    darkContent,
			},
			"monokai.theme "+monokaiDigest+"\n"+
				"dark.theme "+monokaiDigest+"\n"+ // wrong digest
				"missing.theme "+darkDigest+"\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		results, err := v.VerifyAll(context.Background(), manifestPath, 2)

		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "monokai.theme", results[0].Name)
		assert.True(t, results[0].OK)
		assert.Empty(t, results[0].Detail)

		assert.Equal(t, "dark.theme", results[1].Name)
		assert.False(t, results[1].OK)
		assert.Contains(t, results[1].Detail, "digest mismatch")

		assert.Equal(t, "missing.theme", results[2].Name)
		assert.False(t, results[2].OK)
		assert.NotEmpty(t, results[2].Detail)
	})

	t.Run("fails on malformed manifest", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t, nil, "monokai.theme "+monokaiDigest+" extra\n")

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		_, err := v.VerifyAll(context.Background(), manifestPath, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrFormat)
	})

	t.Run("fails on missing manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		_, err := v.VerifyAll(context.Background(), filepath.Join(dir, "MANIFEST"), 2)

		assert.Error(t, err)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		dir, manifestPath := writeThemes(t,
			map[string]string{"monokai.theme": monokaiContent},
			"monokai.theme "+monokaiDigest+"\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		v := manifest.NewVerifier(dir, manifest.WithLogger(discard()))
		_, err := v.VerifyAll(ctx, manifestPath, 2)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses entries in order", func(t *testing.T) {
		t.Parallel()

		input := "monokai.theme " + monokaiDigest + "\n\ndark.theme " + darkDigest + "\n"

		entries, err := manifest.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, manifest.Entry{Name: "monokai.theme", SHA256: monokaiDigest}, entries[0])
		assert.Equal(t, manifest.Entry{Name: "dark.theme", SHA256: darkDigest}, entries[1])
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		entries, err := manifest.Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("fails with line number on malformed line", func(t *testing.T) {
		t.Parallel()

		input := "monokai.theme " + monokaiDigest + "\nbroken\n"

		_, err := manifest.Parse(strings.NewReader(input))

		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrFormat)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	t.Run("returns lowercase hex digest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "f.theme")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

		sum, err := manifest.HashFile(path)

		require.NoError(t, err)
		assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.HashFile("/nonexistent/file")

		assert.Error(t, err)
	})
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
