package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cgraph2dot/cgraph2dot/internal/demo"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "cgraph2dot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.BoolP("verbose", "v", false, "verbose")
	flags.StringP("output", "o", "", "output format")
	flags.String("title", "", "page title")
	flags.Int("a", 0, "first operand")
	flags.Int("b", 0, "second operand")
	flags.Int("factorial-n", 0, "factorial input")
	flags.Int("port", 0, "port")
	flags.Bool("watch", false, "watch")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, demo.Inputs{A: 10, B: 5, FactorialN: 5}, cfg.Demo)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoad_FileSearchedUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `title: From File
demo:
  a: 7
  factorial_n: 3
serve:
  port: 9000
  watch: false
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, demo.Inputs{A: 7, B: 5, FactorialN: 3}, cfg.Demo)
	assert.Equal(t, ServeConfig{Port: 9000, Watch: false}, cfg.Serve)
	assert.Equal(t, "cgraph2dot.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "title: from_file\nserve:\n  port: 9000\n")
	t.Chdir(dir)
	t.Setenv("CGRAPH2DOT_TITLE", "from_env")
	t.Setenv("CGRAPH2DOT_SERVE__PORT", "9100")
	t.Setenv("CGRAPH2DOT_DEMO__FACTORIAL_N", "4")

	cfg, err := Load(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Title)
	assert.Equal(t, 9100, cfg.Serve.Port)
	assert.Equal(t, 4, cfg.Demo.FactorialN)
}

func TestLoad_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "title: from_file\n")
	t.Chdir(dir)
	t.Setenv("CGRAPH2DOT_TITLE", "from_env")

	flags := newFlags()
	require.NoError(t, flags.Set("title", "from_flag"))
	require.NoError(t, flags.Set("factorial-n", "6"))
	require.NoError(t, flags.Set("port", "8181"))
	require.NoError(t, flags.Set("watch", "false"))
	require.NoError(t, flags.Set("config", cfgPath))

	cfg, err := Load(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag", cfg.Title)
	assert.Equal(t, 6, cfg.Demo.FactorialN)
	assert.Equal(t, 8181, cfg.Serve.Port)
	assert.False(t, cfg.Serve.Watch)
}

func TestLoad_UnsetFlagsFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CGRAPH2DOT_OUTPUT", "json")

	cfg, err := Load("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, DefaultPort, cfg.Serve.Port)
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "serve:\n  prot: 9000\n")
	t.Chdir(dir)

	_, err := Load(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prot")
}

func TestLoad_InvalidOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := newFlags()
	require.NoError(t, flags.Set("output", "xml"))

	_, err := Load("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestFlagKey(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"a", "demo.a"},
		{"factorial-n", "demo.factorial_n"},
		{"port", "serve.port"},
		{"verbose", "verbose"},
		{"some-flag", "some_flag"},
		{"config", ""},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, flagKey(tt.flag))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Title = "custom"
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))

	var buf bytes.Buffer
	logger := NewLogger(true, &buf)
	ctx = WithLogger(ctx, logger)
	GetLogger(ctx).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), "hello")
}

func TestNewLogger_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(false, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
