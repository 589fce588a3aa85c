package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersProfile = "../../internal/profile/testdata/orders.yaml"

const brokenProfile = "../../internal/profile/testdata/broken.yaml"

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Check(t *testing.T) {
	code, out, _ := runCLI("check", ordersProfile)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "ok: 5 rule(s)")

	code, out, errOut := runCLI("check", brokenProfile)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown_converter")
	assert.Contains(t, out, "did you mean count")
	assert.Contains(t, errOut, "check failed")
}

func TestRun_CheckWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - for: other.View::Name
    from: other.Model::Name
`), 0o644))

	code, _, _ := runCLI("check", path)
	assert.Equal(t, 1, code)

	code, out, _ := runCLI("-no-catalog", "check", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "ok: 1 rule(s)")
}

func TestRun_Dump(t *testing.T) {
	code, out, _ := runCLI("dump", ordersProfile)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "warehouse.Order::ItemCount")
	assert.Contains(t, out, "MaxDepth: (int) 32")
}

func TestRun_Demo(t *testing.T) {
	code, out, errOut := runCLI("-v", "demo", ordersProfile)
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Ada Lovelace <ada@example.com>")
	assert.Contains(t, out, "gap: [store.Order->warehouse.Order] warehouse.Order::Picker")
	assert.Contains(t, errOut, "mapping gap")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: automapper")

	code, _, errOut = runCLI("explode", ordersProfile)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "explode"`)

	code, _, _ = runCLI("-bogus")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI("check", "does-not-exist.yaml")
	assert.Equal(t, 1, code)
}
