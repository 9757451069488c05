// Package installcheck validates that an Unreal Engine installation has
// the structure the Live Link bridge needs at runtime: an editor
// executable from either engine generation plus the editor libraries the
// message bus depends on. Every failure is reported through the returned
// Result; nothing in this package panics or returns an error, so it is
// safe to call from property editors and other contexts that cannot
// unwind.
package installcheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/livebridge/linkcheck/pkg/check"
)

// Fixed relative locations inside an engine installation. The Win64
// layout is the only one the bridge runs against.
const (
	binariesDir      = "Engine/Binaries/Win64"
	ue4Executable    = "Engine/Binaries/Win64/UE4Editor.exe"
	ue5Executable    = "Engine/Binaries/Win64/UnrealEditor.exe"
	buildVersionFile = "Engine/Build/Build.version"
	versionDirPrefix = "UE_"
)

// requiredLibrary carries both generation spellings of one editor DLL.
// The UE4 to UE5 rename was not a mechanical prefix swap for every
// module, so each name is spelled out instead of derived.
type requiredLibrary struct {
	name string // module name, used in failure messages
	ue4  string
	ue5  string
}

var requiredLibraries = []requiredLibrary{
	{"Core", "UE4Editor-Core.dll", "UnrealEditor-Core.dll"},
	{"CoreUObject", "UE4Editor-CoreUObject.dll", "UnrealEditor-CoreUObject.dll"},
	{"LiveLinkInterface", "UE4Editor-LiveLinkInterface.dll", "UnrealEditor-LiveLinkInterface.dll"},
	{"Messaging", "UE4Editor-Messaging.dll", "UnrealEditor-Messaging.dll"},
	{"UdpMessaging", "UE4Editor-UdpMessaging.dll", "UnrealEditor-UdpMessaging.dll"},
}

// Result describes one installation validation. Valid implies an empty
// Message, a non-empty ExecutablePath and at least one generation flag.
type Result struct {
	Path           string
	Valid          bool
	Message        string
	Version        string
	ExecutablePath string
	HasUE4         bool
	HasUE5         bool
}

// Check validates an engine installation directory.
type Check struct {
	Path  string
	Quick bool       // existence-only check, skip library verification
	FS    FileSystem // injected for testing
}

func (c *Check) fileSystem() FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return &RealFileSystem{}
}

func (c *Check) exists(name string) bool {
	_, err := c.fileSystem().Stat(name)
	return err == nil
}

// join resolves a fixed slash-separated relative location under root.
func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Validate inspects the installation and returns a fully populated
// Result. Checks run in order and stop at the first failure: empty path,
// missing directory, missing editor executable, missing libraries.
func (c *Check) Validate() Result {
	result := Result{Path: c.Path}

	path := strings.TrimSpace(c.Path)
	if path == "" {
		result.Message = "installation path cannot be empty"
		return result
	}

	info, err := c.fileSystem().Stat(path)
	if err != nil || !info.IsDir() {
		result.Message = fmt.Sprintf("installation directory not found: %s", path)
		return result
	}

	result.HasUE4 = c.exists(join(path, ue4Executable))
	result.HasUE5 = c.exists(join(path, ue5Executable))
	if !result.HasUE4 && !result.HasUE5 {
		result.Message = fmt.Sprintf("no editor executable found (expected %s or %s under %s)",
			ue5Executable, ue4Executable, path)
		return result
	}

	if !c.Quick {
		bin := join(path, binariesDir)
		for _, lib := range requiredLibraries {
			ue4Path := filepath.Join(bin, lib.ue4)
			ue5Path := filepath.Join(bin, lib.ue5)
			if !c.exists(ue4Path) && !c.exists(ue5Path) {
				result.Message = fmt.Sprintf("required library %s not found (checked %s and %s)",
					lib.name, ue4Path, ue5Path)
				return result
			}
		}
	}

	result.Valid = true
	if result.HasUE5 {
		result.ExecutablePath = join(path, ue5Executable)
	} else {
		result.ExecutablePath = join(path, ue4Executable)
	}
	result.Version = c.versionLabel(path, result.HasUE4, result.HasUE5)
	return result
}

// Run executes the installation check as a named check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "install:" + strings.TrimSpace(c.Path),
	}

	r := c.Validate()
	if !r.Valid {
		return result.Failf("%s", r.Message)
	}

	result.Status = check.StatusOK
	result.AddDetailf("version: %s", r.Version)
	result.AddDetailf("executable: %s", r.ExecutablePath)
	switch {
	case r.HasUE4 && r.HasUE5:
		result.AddDetail("generations: UE4, UE5")
	case r.HasUE5:
		result.AddDetail("generations: UE5")
	default:
		result.AddDetail("generations: UE4")
	}
	return result
}

// Validate is a one-shot validation against the real file system.
func Validate(path string) Result {
	c := Check{Path: path}
	return c.Validate()
}

// IsValid is the cheap existence-only filter: the directory exists and
// carries either editor executable. Library verification is skipped, so
// a true here only qualifies a path for the full Validate.
func IsValid(path string) bool {
	c := Check{Path: path, Quick: true}
	return c.Validate().Valid
}
