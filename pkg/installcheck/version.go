package installcheck

import (
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/livebridge/linkcheck/pkg/version"
)

// Version derives a version label for the installation at path. It
// never fails: every source that cannot be read falls through to the
// next, ending at "Unknown".
//
// Sources, in order:
//  1. the trailing path segment, when it follows the UE_<version>
//     convention of launcher-managed installs ("UE_5.3" yields "5.3");
//  2. Engine/Build/Build.version, the engine's own JSON version stamp;
//  3. inference from which editor generations are present.
func Version(path string) string {
	c := Check{Path: path}
	return c.Version()
}

// Version derives the version label using the check's file system.
func (c *Check) Version() string {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		return "Unknown"
	}
	hasUE4 := c.exists(join(path, ue4Executable))
	hasUE5 := c.exists(join(path, ue5Executable))
	return c.versionLabel(path, hasUE4, hasUE5)
}

func (c *Check) versionLabel(path string, hasUE4, hasUE5 bool) string {
	if v, ok := versionFromDirName(path); ok {
		return v
	}
	if v, ok := c.versionFromBuildFile(path); ok {
		return v
	}
	switch {
	case hasUE4 && hasUE5:
		return "5.x (4.x compatible)"
	case hasUE5:
		return "5.x"
	case hasUE4:
		return "4.x"
	}
	return "Unknown"
}

// versionFromDirName recognizes the UE_<version> directory convention.
func versionFromDirName(path string) (string, bool) {
	base := filepath.Base(strings.TrimRight(path, `/\`))
	rest, ok := strings.CutPrefix(base, versionDirPrefix)
	if !ok || rest == "" {
		return "", false
	}
	if _, err := version.Parse(rest); err != nil {
		return "", false
	}
	return rest, true
}

// versionFromBuildFile reads the engine's Build.version JSON stamp.
func (c *Check) versionFromBuildFile(path string) (string, bool) {
	data, err := c.fileSystem().ReadFile(join(path, buildVersionFile))
	if err != nil {
		return "", false
	}
	major := gjson.GetBytes(data, "MajorVersion")
	minor := gjson.GetBytes(data, "MinorVersion")
	if !major.Exists() || !minor.Exists() {
		return "", false
	}
	v := version.Version{
		Major: int(major.Int()),
		Minor: int(minor.Int()),
		Patch: int(gjson.GetBytes(data, "PatchVersion").Int()),
	}
	return v.String(), true
}
