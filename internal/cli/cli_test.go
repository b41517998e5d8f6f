package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/zlabel/config"
	"github.com/ByLCY/zlabel/zpl"
)

const sampleLabel = `label A width 400 height 200 {
  rect box {
    width: 100
    height: 50
  }
  text t {
    "Hi ${name}"
    x: 10
  }
}
`

// run executes the CLI with args and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { zpl.SetLogger(nil) })
	var stdout, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetOut(&stdout)
	root.SetErr(&logs)
	if !containsFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "none.toml"))
	}
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), logs.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.zlabel", sampleLabel)
	data := writeFile(t, dir, "data.json", `{"name": "Ada"}`)

	out, _, err := run(t, "compile", src, "--data", data)
	require.NoError(t, err)
	want := "^XA\n^CI28\n^FO0,0^GB100,50,1,B,0^FS\n" +
		`^FO10,0^A0,30^FB400,1,0,L,0^FH_^FDHi Ada\&^FS` + "\n^XZ\n"
	assert.Equal(t, want, out)
}

func TestCompileWritesFilesAndHeader(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.zlabel", sampleLabel)
	data := writeFile(t, dir, "data.yaml", "name: Ada\n")
	outPath := filepath.Join(dir, "a.zpl")
	debugPath := filepath.Join(dir, "debug", "a.json")

	_, _, err := run(t, "compile", src, "-d", data, "-o", outPath, "--debug", debugPath, "--header")
	require.NoError(t, err)

	code, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(code), "^XA\n^CI28\n^PW400\n^LL200\n"), string(code))

	debug, err := os.ReadFile(debugPath)
	require.NoError(t, err)
	assert.Contains(t, string(debug), `"id": "box"`)
}

func TestCompileWarnsOnMissingData(t *testing.T) {
	src := writeFile(t, t.TempDir(), "a.zlabel", sampleLabel)
	out, logs, err := run(t, "compile", src)
	require.NoError(t, err)
	assert.Contains(t, out, `^FDHi ${name}\&^FS`)
	assert.Contains(t, logs, "name")
}

func TestCompileErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "compile", filepath.Join(dir, "missing.zlabel"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.zlabel", "label A {\n  qrcode q {\n  }\n}\n")
	_, _, err = run(t, "compile", bad)
	assert.ErrorContains(t, err, "unknown component")

	_, _, err = run(t, "compile")
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	out, _, err := run(t, "template", "2", "--width", "3", "--height", "2", "--dpi", "203",
		"--title", "Title", "--subtitle", "Sub", "--info", "Info", "--barcode", "1234546789")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "^XA\n^CI28\n^FO20,20^GB569,335,3,B,1^FS\n"), out)
	assert.True(t, strings.HasSuffix(out, "^XZ\n"), out)
}

func TestTemplateRejectsUnknown(t *testing.T) {
	_, _, err := run(t, "template", "3")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "zlabel.toml", "[output]\nutf8 = false\nheader = true\n")
	src := writeFile(t, dir, "a.zlabel", "label A width 10 height 20 {\n}\n")

	out, _, err := run(t, "compile", src, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "^XA\n^PW10\n^LL20\n^XZ\n", out)

	badLevel := writeFile(t, dir, "bad.toml", "[log]\nlevel = \"loud\"\n")
	_, _, err = run(t, "compile", src, "--config", badLevel)
	assert.Error(t, err)
}

func TestResolveLevel(t *testing.T) {
	cfg := config.Default()
	level, err := resolveLevel(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)

	level, err = resolveLevel(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	cfg.Log.Level = "warn"
	level, err = resolveLevel(cfg, false)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, level)
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
	assert.Equal(t, config.Default(), configFromContext(context.Background()))
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("compiled", "labels", 1)
	assert.Contains(t, buf.String(), "compiled")
	assert.Contains(t, buf.String(), "elapsed")
}

func TestCompileExample(t *testing.T) {
	out, logs, err := run(t, "compile", "../../examples/shipping.zlabel", "--data", "../../examples/shipping.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `^FDHello Ada Lovelace\&^FS`)
	assert.Contains(t, out, "^BY 2^BCN,60,N,N,N,N^FD1234546789^FS")
	assert.NotContains(t, logs, "WARN")
}

func TestVersion(t *testing.T) {
	prevVersion, prevCommit, prevDate := version, commit, date
	t.Cleanup(func() { SetVersion(prevVersion, prevCommit, prevDate) })

	SetVersion("v1.2.3", "abc123", "2026-01-02")
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "zlabel v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\n", out)
}
