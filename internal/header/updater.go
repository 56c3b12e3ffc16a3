package header

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// defaultFileMode is used when the header's own mode cannot be determined.
const defaultFileMode fs.FileMode = 0o644

// Updater performs the read/bump/rewrite pass over a version header.
type Updater struct {
	// Product is interpolated into the FIRMWARE_VERSION_FULL constant.
	Product string

	// Logger receives missing-field warnings. Defaults to slog.Default.
	Logger *slog.Logger
}

// Result describes one completed (or previewed) bump.
type Result struct {
	Field Field
	Old   Version
	New   Version

	// Missing lists fields that were absent from the header and defaulted
	// to zero.
	Missing []Field
}

// Current reads the version recorded in the header at path without
// modifying anything.
func (u *Updater) Current(path string) (Version, error) {
	_, v, _, err := u.load(path)
	if err != nil {
		return Version{}, err
	}
	return v, nil
}

// Preview computes the bump result without writing the file back.
func (u *Updater) Preview(path string, f Field) (Result, error) {
	_, res, err := u.bump(path, f)
	return res, err
}

// Update bumps the given field and rewrites the header in place. The file
// is never touched when it cannot be read or the field is unknown; missing
// individual constants are warned about and defaulted to zero.
func (u *Updater) Update(path string, f Field) (Result, error) {
	doc, res, err := u.bump(path, f)
	if err != nil {
		return Result{}, err
	}

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(doc.String()), mode); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	u.logger().Debug("updated version header", "path", path, "field", f, "version", res.New.String())
	return res, nil
}

// bump loads the header and applies the increment to the in-memory text.
func (u *Updater) bump(path string, f Field) (*Document, Result, error) {
	if _, err := ParseField(f.String()); err != nil {
		return nil, Result{}, err
	}

	doc, old, missing, err := u.load(path)
	if err != nil {
		return nil, Result{}, err
	}

	next := old.Bump(f)
	doc.SetVersion(next, u.Product)

	return doc, Result{Field: f, Old: old, New: next, Missing: missing}, nil
}

// load reads the header and parses its version, warning once per missing
// constant.
func (u *Updater) load(path string) (*Document, Version, []Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Version{}, nil, fmt.Errorf("read version header: %w", err)
	}

	doc := NewDocument(string(data))
	v, missing := doc.Version()
	for _, f := range missing {
		u.logger().Warn("version field not found, defaulting to 0", "field", f, "path", path)
	}
	return doc, v, missing, nil
}

func (u *Updater) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}
