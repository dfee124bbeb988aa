package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	vars, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestLoadParsesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nTUNNEL_SEED=42\nexport TUNNEL_TITLE=\"deep tunnel\"\nTUNNEL_BLOOM='off'\nbroken line\n=nokey\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	vars, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TUNNEL_SEED":  "42",
		"TUNNEL_TITLE": "deep tunnel",
		"TUNNEL_BLOOM": "off",
	}, vars)
}

func TestLookupPrefersProcessEnv(t *testing.T) {
	t.Setenv("TUNNEL_TEST_KEY", "process")
	lookup := Lookup(map[string]string{"TUNNEL_TEST_KEY": "file", "TUNNEL_TEST_OTHER": "file"})

	v, ok := lookup("TUNNEL_TEST_KEY")
	assert.True(t, ok)
	assert.Equal(t, "process", v)

	v, ok = lookup("TUNNEL_TEST_OTHER")
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	_, ok = lookup("TUNNEL_TEST_MISSING")
	assert.False(t, ok)
}
