// Package header parses and rewrites firmware version headers. A version
// header is a plain-text file carrying four integer #define constants
// (major, minor, patch, build) plus two derived string constants; only the
// value spans are ever touched, everything else is preserved byte-for-byte.
package header

import "fmt"

// Version holds the four integer version components of a firmware header.
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

// Bump returns a copy with the given field incremented by one. Bumping a
// higher-significance field zeroes the lower ones: major resets minor and
// patch, minor resets patch. The build number is independent and never
// reset.
func (v Version) Bump(f Field) Version {
	switch f {
	case FieldMajor:
		v.Major++
		v.Minor = 0
		v.Patch = 0
	case FieldMinor:
		v.Minor++
		v.Patch = 0
	case FieldPatch:
		v.Patch++
	case FieldBuild:
		v.Build++
	}
	return v
}

// Get returns the value of the named field.
func (v Version) Get(f Field) int {
	switch f {
	case FieldMajor:
		return v.Major
	case FieldMinor:
		return v.Minor
	case FieldPatch:
		return v.Patch
	default:
		return v.Build
	}
}

// String renders the "major.minor.patch-build" form used for
// FIRMWARE_VERSION_STRING.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Full renders the FIRMWARE_VERSION_FULL form, interpolating the product
// name: "<product> v<major>.<minor>.<patch>-<build>".
func (v Version) Full(product string) string {
	return fmt.Sprintf("%s v%s", product, v)
}
