package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	"github.com/msto63/chbrowse/pkg/core/config"
)

// setupEnv points the CLI at a config in a temp dir with colour off
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfg := `
[general]
color = false
confirm_exit = false

[history]
path = "` + filepath.ToSlash(filepath.Join(dir, "history.db")) + `"
`
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	t.Setenv(config.EnvConfigPath, path)
	t.Cleanup(teardownApp)
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "run", "factorial", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "120")

	out, err = execute(t, "", "run", "ff", "-r", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "3628800")

	out, err = execute(t, "", "run", "speed", "plate", "AB12 CDE")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestRun_Description(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "run", "1", "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRun_Errors(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "run", "nosuch")
	require.Error(t, err)
	assert.True(t, cberror.HasCode(err, cberror.CodeUnknownCommand))

	_, err = execute(t, "", "run", "factorial", "21")
	require.Error(t, err)
	assert.True(t, cberror.HasCode(err, cberror.CodeOverflow))
}

func TestRun_GlobalFlags(t *testing.T) {
	dir := setupEnv(t)
	t.Cleanup(func() { cfgFile, noColor = "", false })

	out, err := execute(t, "", "run", "--no-color", "--config", os.Getenv(config.EnvConfigPath), "factorial", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "120")

	_, err = execute(t, "", "run", "--config="+filepath.Join(dir, "missing.toml"), "factorial", "5")
	require.Error(t, err)
	assert.True(t, cberror.HasCode(err, cberror.CodeConfigError), "got %v", err)
	cfgFile = ""

	out, err = execute(t, "", "run", "--", "factorial", "-r", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "24")
}

func TestRun_Help(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "run", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Global flags go before the challenge identifier")
}

func TestSplitRunArgs(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.AddFlagSet(rootCmd.PersistentFlags())

	tests := []struct {
		args      []string
		wantFlags []string
		wantRest  []string
	}{
		{[]string{"factorial", "5"}, nil, []string{"factorial", "5"}},
		{[]string{"-v", "factorial", "-r", "5"}, []string{"-v"}, []string{"factorial", "-r", "5"}},
		{[]string{"--config", "x.toml", "ff", "5"}, []string{"--config", "x.toml"}, []string{"ff", "5"}},
		{[]string{"--config=x.toml", "ff"}, []string{"--config=x.toml"}, []string{"ff"}},
		{[]string{"--no-color", "--", "-5"}, []string{"--no-color"}, []string{"-5"}},
		{[]string{"-v"}, []string{"-v"}, nil},
	}

	for _, tt := range tests {
		flags, rest := splitRunArgs(fs, tt.args)
		assert.Equal(t, tt.wantFlags, flags, "args %v", tt.args)
		assert.Equal(t, tt.wantRest, rest, "args %v", tt.args)
	}
}

func TestList(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FactorialFinder")
	assert.Contains(t, out, "SpeedTracker")
}

func TestOffenders(t *testing.T) {
	dir := setupEnv(t)
	input := filepath.Join(dir, "records.txt")
	require.NoError(t, os.WriteFile(input, []byte("75,AB12 CDE\n60,AB12 CDE\n"), 0644))

	out, err := execute(t, "", "offenders", input)
	require.NoError(t, err)
	assert.Contains(t, out, "1 offenders")

	data, err := os.ReadFile(filepath.Join(dir, "records_offenders.txt"))
	require.NoError(t, err)
	assert.Equal(t, "speeding,75,AB12 CDE\n", string(data))
}

func TestOffenders_MissingInput(t *testing.T) {
	dir := setupEnv(t)

	_, err := execute(t, "", "offenders", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, cberror.HasCode(err, cberror.CodeFileNotFound))
}

func TestBrowseAndHistory(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "factorial 3\nnosuch\nexit\n", "browse")
	require.NoError(t, err)
	assert.Contains(t, out, "Response Browser for OCR 2016 Coding Challenges")
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "error: unknown command: nosuch")

	out, err = execute(t, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "factorial 3")
	assert.Contains(t, out, "nosuch")
}

func TestBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[speedtracker]\nspeed_limit_mph = -1\n"), 0644))
	t.Setenv(config.EnvConfigPath, path)
	t.Cleanup(teardownApp)

	_, err := execute(t, "", "list")
	require.Error(t, err)
	assert.True(t, cberror.HasCode(err, cberror.CodeConfigError))
}

func TestVersion(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chbrowse v")
	assert.Contains(t, out, "FactorialFinder")
}

func TestDoctor(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "challenges")
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "Status: healthy")
}
