// Package manifest verifies theme files against recorded SHA-256 digests.
package manifest

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tint"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ tint.Verifier = (*Verifier)(nil)

// ErrFormat indicates a manifest line that does not contain exactly two
// whitespace-separated fields.
var ErrFormat = errors.New("malformed manifest line")

// Entry is a single manifest line: a theme file name and the lowercase
// hex SHA-256 digest recorded for its contents.
type Entry struct {
	Name   string
	SHA256 string
}

// Result is the outcome of verifying one manifest entry.
type Result struct {
	Name   string // Entry name as recorded in the manifest
	OK     bool   // Whether the file's digest matches the recorded one
	Detail string // Failure detail when OK is false
}

// Verifier checks theme files against a manifest. Entry names resolve
// relative to the verifier's themes directory.
type Verifier struct {
	themesDir string
	logger    *slog.Logger
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithLogger sets the logger used for soft verification failures.
func WithLogger(l *slog.Logger) VerifierOption {
	return func(v *Verifier) {
		v.logger = l
	}
}

// NewVerifier creates a Verifier for themes stored under themesDir.
func NewVerifier(themesDir string, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		themesDir: themesDir,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify reports whether the file at themePath matches the digest the
// manifest at manifestPath records for it. A missing theme file, an
// unopenable manifest, an absent entry and a digest mismatch all log
// and report (false, nil); only a malformed manifest line reached
// during the scan fails the call itself. The scan stops at the first
// entry whose name, joined with the themes directory, equals the
// cleaned theme path, so later lines are never parsed.
func (v *Verifier) Verify(themePath, manifestPath string) (bool, error) {
	if _, err := os.Stat(themePath); err != nil {
		v.logger.Warn("Theme file does not exist", "theme", themePath, "error", err)
		return false, nil
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		v.logger.Warn("Failed to open manifest", "manifest", manifestPath, "error", err)
		return false, nil
	}
	defer f.Close()

	target := filepath.Clean(themePath)

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return false, fmt.Errorf("line %d: %w: %q", lineNum, ErrFormat, line)
		}

		if filepath.Join(v.themesDir, fields[0]) != target {
			continue
		}

		sum, err := HashFile(themePath)
		if err != nil {
			v.logger.Warn("Failed to hash theme file", "theme", themePath, "error", err)
			return false, nil
		}
		if sum != fields[1] {
			v.logger.Warn("Theme digest mismatch", "theme", themePath, "recorded", fields[1], "computed", sum)
			return false, nil
		}
		return true, nil
	}
	if err := scanner.Err(); err != nil {
		v.logger.Warn("Failed to read manifest", "manifest", manifestPath, "error", err)
		return false, nil
	}

	v.logger.Warn("Theme not found in manifest", "theme", themePath, "manifest", manifestPath)
	return false, nil
}

// VerifyAll checks every manifest entry and returns one result per
// entry, in manifest order. Entries are hashed concurrently by up to
// workers goroutines. Per-entry failures (missing or unreadable files,
// digest mismatches) land in the results; an unreadable or malformed
// manifest fails the call.
func (v *Verifier) VerifyAll(ctx context.Context, manifestPath string, workers int) ([]Result, error) {
	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range entries {
		entry := entries[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = v.verifyEntry(entry)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (v *Verifier) verifyEntry(e Entry) Result {
	sum, err := HashFile(filepath.Join(v.themesDir, e.Name))
	if err != nil {
		return Result{Name: e.Name, Detail: err.Error()}
	}
	if sum != e.SHA256 {
		return Result{
			Name:   e.Name,
			Detail: fmt.Sprintf("digest mismatch: recorded %s, computed %s", e.SHA256, sum),
		}
	}
	return Result{Name: e.Name, OK: true}
}

// Parse reads a whole manifest: one entry per non-blank line, name and
// digest separated by whitespace. Unlike Verify it always consumes
// every line, so any malformed line is an error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrFormat, line)
		}
		entries = append(entries, Entry{Name: fields[0], SHA256: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// HashFile returns the lowercase hex SHA-256 digest of the file at path.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
