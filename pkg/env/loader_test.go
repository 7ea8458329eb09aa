package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultLoader_Load(t *testing.T) {
	path := writeEnv(t, `# Comment
FOO=bar
BAZ="quoted value"
EMPTY=
SINGLE_QUOTE='single'
export EXPORTED=yes
not a pair
`)

	l := NewLoader()
	assert.False(t, l.Loaded())
	require.NoError(t, l.Load(path))
	assert.True(t, l.Loaded())

	assert.Equal(t, map[string]string{
		"FOO":          "bar",
		"BAZ":          "quoted value",
		"EMPTY":        "",
		"SINGLE_QUOTE": "single",
		"EXPORTED":     "yes",
	}, l.All())
}

func TestDefaultLoader_Load_FileNotFound(t *testing.T) {
	assert.Error(t, NewLoader().Load("/nonexistent/.env"))
}

func TestDefaultLoader_Get(t *testing.T) {
	l := NewLoader()
	l.vars["TEST_KEY"] = "from_file"
	l.vars["TEST_KEY_ENV"] = "from_file"
	t.Setenv("TEST_KEY_ENV", "from_os")

	assert.Equal(t, "from_file", l.Get("TEST_KEY"))
	assert.Equal(t, "from_os", l.Get("TEST_KEY_ENV"))
	assert.Equal(t, "", l.Get("NONEXISTENT"))
}

func TestDefaultLoader_Prefix(t *testing.T) {
	l := NewLoaderWithPrefix("EXPECTCTL_")
	l.vars["EXPECTCTL_LOG_FORMAT"] = "json"
	l.vars["LOG_FORMAT"] = "console"

	assert.Equal(t, "json", l.Get("LOG_FORMAT"))

	t.Setenv("EXPECTCTL_LOG_FORMAT", "console")
	assert.Equal(t, "console", l.Get("LOG_FORMAT"))

	_, err := l.GetRequired("REPORT_DIR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPECTCTL_REPORT_DIR")
}

func TestDefaultLoader_GetRequired(t *testing.T) {
	l := NewLoader()
	l.vars["EXISTS"] = "value"

	v, err := l.GetRequired("EXISTS")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = l.GetRequired("MISSING")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING")
}

func TestDefaultLoader_GetWithDefault(t *testing.T) {
	l := NewLoader()
	l.vars["EXISTS"] = "value"

	assert.Equal(t, "value", l.GetWithDefault("EXISTS", "default"))
	assert.Equal(t, "default", l.GetWithDefault("MISSING", "default"))
}

func TestDefaultLoader_GetBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			l := NewLoader()
			l.vars["FLAG"] = tt.value
			assert.Equal(t, tt.want, l.GetBool("FLAG", tt.def))
		})
	}
}

func TestDefaultLoader_GetList(t *testing.T) {
	l := NewLoader()
	l.vars["LIST"] = " text, schema ,,"

	assert.Equal(t, []string{"text", "schema"}, l.GetList("LIST"))
	assert.Nil(t, l.GetList("MISSING"))
}

func TestDefaultLoader_Set(t *testing.T) {
	l := NewLoaderWithPrefix("EXPECT_TEST_")
	t.Cleanup(func() { os.Unsetenv("EXPECT_TEST_MY_VAR") })

	require.NoError(t, l.Set("MY_VAR", "my_value"))
	assert.Equal(t, "my_value", l.Get("MY_VAR"))
	assert.Equal(t, "my_value", os.Getenv("EXPECT_TEST_MY_VAR"))
}

func TestDefaultLoader_All_Copy(t *testing.T) {
	l := NewLoader()
	l.vars["A"] = "1"

	all := l.All()
	all["C"] = "3"
	assert.NotContains(t, l.vars, "C")
}
