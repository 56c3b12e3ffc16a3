package header

import (
	"regexp"
	"strconv"
)

// Label strings for the version constants, exactly as they appear in the
// header file.
const (
	LabelMajor         = "FIRMWARE_VERSION_MAJOR"
	LabelMinor         = "FIRMWARE_VERSION_MINOR"
	LabelPatch         = "FIRMWARE_VERSION_PATCH"
	LabelBuild         = "FIRMWARE_BUILD_NUMBER"
	LabelVersionString = "FIRMWARE_VERSION_STRING"
	LabelVersionFull   = "FIRMWARE_VERSION_FULL"
)

// fieldPatterns match "#define <LABEL><whitespace><digits>". Group 2 is the
// digit span that gets rewritten.
var fieldPatterns = map[Field]*regexp.Regexp{
	FieldMajor: regexp.MustCompile(`(#define ` + LabelMajor + `\s+)(\d+)`),
	FieldMinor: regexp.MustCompile(`(#define ` + LabelMinor + `\s+)(\d+)`),
	FieldPatch: regexp.MustCompile(`(#define ` + LabelPatch + `\s+)(\d+)`),
	FieldBuild: regexp.MustCompile(`(#define ` + LabelBuild + `\s+)(\d+)`),
}

// String constant patterns. Group 2 is the quoted payload, excluding the
// quote delimiters.
var (
	versionStringPattern = regexp.MustCompile(`(#define ` + LabelVersionString + `\s+")([^"]*)(")`)
	versionFullPattern   = regexp.MustCompile(`(#define ` + LabelVersionFull + `\s+")([^"]*)(")`)
)

// Document is the mutable text of a version header. Mutations replace only
// the matched value spans; all surrounding bytes are kept as read.
type Document struct {
	text string
}

// NewDocument wraps the raw header text.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// String returns the current header text.
func (d *Document) String() string {
	return d.text
}

// Version extracts the four integer fields. Fields whose pattern is absent
// from the text default to 0 and are reported in missing; callers treat
// that as a warning, not a failure.
func (d *Document) Version() (v Version, missing []Field) {
	for _, f := range Fields {
		m := fieldPatterns[f].FindStringSubmatch(d.text)
		if m == nil {
			missing = append(missing, f)
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			// \d+ guarantees digits; only overflow can land here.
			missing = append(missing, f)
			continue
		}
		switch f {
		case FieldMajor:
			v.Major = n
		case FieldMinor:
			v.Minor = n
		case FieldPatch:
			v.Patch = n
		case FieldBuild:
			v.Build = n
		}
	}
	return v, missing
}

// SetVersion rewrites the four integer spans plus the version-string and
// full-version payloads. Constants absent from the text are skipped.
func (d *Document) SetVersion(v Version, product string) {
	for _, f := range Fields {
		d.replaceGroup(fieldPatterns[f], strconv.Itoa(v.Get(f)))
	}
	d.replaceGroup(versionStringPattern, v.String())
	d.replaceGroup(versionFullPattern, v.Full(product))
}

// replaceGroup splices value over capture group 2 of the first match,
// leaving every other byte untouched.
func (d *Document) replaceGroup(re *regexp.Regexp, value string) bool {
	idx := re.FindStringSubmatchIndex(d.text)
	if idx == nil {
		return false
	}
	start, end := idx[4], idx[5]
	d.text = d.text[:start] + value + d.text[end:]
	return true
}
