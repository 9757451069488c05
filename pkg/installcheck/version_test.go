package installcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_DirNameConvention(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"launcher install", "UE_5.3", "5.3"},
		{"two component", "UE_7.1", "7.1"},
		{"three component", "UE_5.3.2", "5.3.2"},
		{"prefix with non-version suffix ignored", "UE_Source", "Unknown"},
		{"no prefix", "CustomBuild", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The directory need not exist: the name alone decides.
			path := filepath.Join("C:", "Programs", tt.dir)
			assert.Equal(t, tt.want, Version(path))
		})
	}
}

func TestVersion_DirNameTrailingSeparator(t *testing.T) {
	assert.Equal(t, "5.3", Version("/opt/engines/UE_5.3/"))
}

func TestVersion_DirNameWinsOverTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "UE_7.1")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, ue4Files...) // UE4-only tree must not override

	assert.Equal(t, "7.1", Version(root))
}

func TestVersion_BuildVersionFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, ue5Files...)
	buildFile := filepath.Join(root, filepath.FromSlash("Engine/Build/Build.version"))
	require.NoError(t, os.MkdirAll(filepath.Dir(buildFile), 0o755))
	require.NoError(t, os.WriteFile(buildFile,
		[]byte(`{"MajorVersion": 5, "MinorVersion": 3, "PatchVersion": 2}`), 0o644))

	assert.Equal(t, "5.3.2", Version(root))
}

func TestVersion_BuildVersionFileMalformed(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, ue5Files...)
	buildFile := filepath.Join(root, filepath.FromSlash("Engine/Build/Build.version"))
	require.NoError(t, os.MkdirAll(filepath.Dir(buildFile), 0o755))
	require.NoError(t, os.WriteFile(buildFile, []byte("not json at all"), 0o644))

	// Malformed stamp falls through to generation inference.
	assert.Equal(t, "5.x", Version(root))
}

func TestVersion_GenerationInference(t *testing.T) {
	ue5 := t.TempDir()
	writeTree(t, ue5, "Engine/Binaries/Win64/UnrealEditor.exe")

	ue4 := t.TempDir()
	writeTree(t, ue4, "Engine/Binaries/Win64/UE4Editor.exe")

	both := t.TempDir()
	writeTree(t, both,
		"Engine/Binaries/Win64/UnrealEditor.exe",
		"Engine/Binaries/Win64/UE4Editor.exe")

	assert.Equal(t, "5.x", Version(ue5))
	assert.Equal(t, "4.x", Version(ue4))
	assert.Equal(t, "5.x (4.x compatible)", Version(both))
	assert.Equal(t, "Unknown", Version(t.TempDir()))
	assert.Equal(t, "Unknown", Version(""))
	assert.Equal(t, "Unknown", Version("   "))
}

// brokenFS fails every operation; version derivation must still answer.
type brokenFS struct{}

func (brokenFS) Stat(string) (fs.FileInfo, error) { return nil, os.ErrPermission }
func (brokenFS) ReadFile(string) ([]byte, error)  { return nil, os.ErrPermission }

func TestVersion_NeverFails(t *testing.T) {
	c := &Check{Path: "/opt/engines/custom", FS: brokenFS{}}
	assert.Equal(t, "Unknown", c.Version())
}
