package header

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when an increment kind does not name one of
// the four version fields.
var ErrUnknownField = errors.New("unknown version field")

// Field identifies one of the four version components tracked in a header.
type Field string

// The four version fields, ordered by significance.
const (
	FieldMajor Field = "major"
	FieldMinor Field = "minor"
	FieldPatch Field = "patch"
	FieldBuild Field = "build"
)

// Fields lists all fields in significance order.
var Fields = []Field{FieldMajor, FieldMinor, FieldPatch, FieldBuild}

// ParseField converts an increment-kind argument into a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldMajor, FieldMinor, FieldPatch, FieldBuild:
		return Field(s), nil
	}
	return "", fmt.Errorf("%w: %q (valid: major, minor, patch, build)", ErrUnknownField, s)
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}
