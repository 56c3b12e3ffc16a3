package header

import "fmt"

// Scaffold renders a starter version header carrying the six managed
// constants, suitable for a fresh firmware project.
func Scaffold(product string, v Version) string {
	return fmt.Sprintf(`#ifndef VERSION_H
#define VERSION_H

// Firmware version information
#define %s  %d
#define %s  %d
#define %s  %d

// Build number (auto-incremented by the build system)
#define %s   %d

// Version string format: "major.minor.patch-build"
#define %s "%s"

// Full version string with additional info
#define %s   "%s"

#endif // VERSION_H
`,
		LabelMajor, v.Major,
		LabelMinor, v.Minor,
		LabelPatch, v.Patch,
		LabelBuild, v.Build,
		LabelVersionString, v.String(),
		LabelVersionFull, v.Full(product),
	)
}
