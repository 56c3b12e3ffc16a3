package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `#ifndef VERSION_H
#define VERSION_H

// Firmware version information
#define FIRMWARE_VERSION_MAJOR  1
#define FIRMWARE_VERSION_MINOR  2
#define FIRMWARE_VERSION_PATCH  3

// Build number (auto-incremented by the build system)
#define FIRMWARE_BUILD_NUMBER   9

// Version string format: "major.minor.patch-build"
#define FIRMWARE_VERSION_STRING "1.2.3-9"

// Full version string with additional info
#define FIRMWARE_VERSION_FULL   "ESP32 RTP Transciever v1.2.3-9"

// Application name
#define FIRMWARE_APP_NAME       "esp32-rtp"

#endif // VERSION_H
`

func TestDocument_Version(t *testing.T) {
	doc := NewDocument(sampleHeader)

	v, missing := doc.Version()
	assert.Empty(t, missing)
	assert.Equal(t, Version{Major: 1, Minor: 2, Patch: 3, Build: 9}, v)
}

func TestDocument_Version_MissingFieldsDefaultToZero(t *testing.T) {
	doc := NewDocument("#define FIRMWARE_VERSION_MAJOR  4\n")

	v, missing := doc.Version()
	assert.Equal(t, Version{Major: 4}, v)
	assert.ElementsMatch(t, []Field{FieldMinor, FieldPatch, FieldBuild}, missing)
}

func TestDocument_SetVersion(t *testing.T) {
	doc := NewDocument(sampleHeader)

	doc.SetVersion(Version{Major: 1, Minor: 2, Patch: 4, Build: 9}, "ESP32 RTP Transciever")

	out := doc.String()
	assert.Contains(t, out, "#define FIRMWARE_VERSION_PATCH  4")
	assert.Contains(t, out, `#define FIRMWARE_VERSION_STRING "1.2.4-9"`)
	assert.Contains(t, out, `#define FIRMWARE_VERSION_FULL   "ESP32 RTP Transciever v1.2.4-9"`)
}

func TestDocument_SetVersion_PreservesSurroundingBytes(t *testing.T) {
	doc := NewDocument(sampleHeader)

	doc.SetVersion(Version{Major: 2, Minor: 0, Patch: 0, Build: 9}, "ESP32 RTP Transciever")

	out := doc.String()
	// Only the value spans may change: labels, spacing, comments, and the
	// unmanaged constants stay put.
	assert.Contains(t, out, "// Firmware version information")
	assert.Contains(t, out, `#define FIRMWARE_APP_NAME       "esp32-rtp"`)
	assert.Contains(t, out, "#define FIRMWARE_VERSION_MAJOR  2")
	assert.Equal(t, strings.Count(sampleHeader, "\n"), strings.Count(out, "\n"))
}

func TestDocument_SetVersion_WiderNumbersKeepLabelSpacing(t *testing.T) {
	doc := NewDocument(sampleHeader)

	doc.SetVersion(Version{Major: 1, Minor: 2, Patch: 3, Build: 100}, "ESP32 RTP Transciever")

	out := doc.String()
	assert.Contains(t, out, "#define FIRMWARE_BUILD_NUMBER   100")
	assert.Contains(t, out, `#define FIRMWARE_VERSION_STRING "1.2.3-100"`)
}

func TestDocument_SetVersion_SkipsAbsentConstants(t *testing.T) {
	doc := NewDocument("#define FIRMWARE_VERSION_MAJOR  1\nunrelated text\n")

	doc.SetVersion(Version{Major: 2}, "Widget")

	assert.Equal(t, "#define FIRMWARE_VERSION_MAJOR  2\nunrelated text\n", doc.String())
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := NewDocument(sampleHeader)

	v, missing := doc.Version()
	require.Empty(t, missing)
	doc.SetVersion(v, "ESP32 RTP Transciever")

	// Re-applying the parsed version is a no-op.
	assert.Equal(t, sampleHeader, doc.String())
}
