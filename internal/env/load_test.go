package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pairs, err := Parse(strings.NewReader(`
# comment
A=1
export B = "two words"
C='x'
=nokey
junk
D=
`))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"A", "1"}, {"B", "two words"}, {"C", "x"}, {"D", ""}}, pairs)
}

func TestLoadKeepsExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JOINT_ENV_A=file\nJOINT_ENV_B=file\n"), 0644))
	t.Setenv("JOINT_ENV_A", "shell")
	t.Setenv("JOINT_ENV_B", "")
	require.NoError(t, os.Unsetenv("JOINT_ENV_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "shell", os.Getenv("JOINT_ENV_A"))
	assert.Equal(t, "file", os.Getenv("JOINT_ENV_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}
