package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps("")
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	for _, raw := range []string{"0", "-2", "x"} {
		_, err := parseSteps(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("1")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = parseVersion("")
	assert.Error(t, err)
	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), target)

	_, err = parseTarget("-42")
	assert.Error(t, err)
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	t.Chdir(t.TempDir())
	_, err = resolveMigrationsDir("")
	assert.Error(t, err)
}

func TestNormalizeDBURL(t *testing.T) {
	in := "postgres://u:p@localhost:5432/scout_market?sslmode=disable"
	assert.Equal(t, in, normalizeDBURL(in, false))
	assert.Contains(t, normalizeDBURL(in, true), "disable_prepared_binary_result=yes")
}

func TestApp_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	require.NoError(t, os.Unsetenv("DB_URL"))

	app := newApp(logging.NewNop())
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run([]string{"migration", "version"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "db-url"), err.Error())
}
