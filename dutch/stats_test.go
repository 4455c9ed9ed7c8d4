package dutch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsProcessorCounts(t *testing.T) {
	assert := assert.New(t)

	src := "a = \"Vul hier uw naam in:\"\n" + // emitted
		"b = \"kort\"\n" + // too short
		"c = \"lang_genoeg_maar_zonder_leestekens\"\n" + // no punctuation
		"d = \"nl.belastingdienst.aangifte.Scherm\"\n" // identifier shaped
	path := writeBundle(t, "pa.js", []byte(src))

	sp := &statsProcessor{encName: "utf-8", cfg: Config{MinLength: 10}}
	require.NoError(t, sp.process(path))

	require.Len(t, sp.files, 1)
	fs := sp.files[0]
	assert.Equal(path, fs.path)
	assert.Equal(4, fs.literals)
	assert.Equal(1, fs.emitted)
	assert.Equal(1, fs.tooShort)
	assert.Equal(1, fs.noPunctuation)
	assert.Equal(1, fs.identifiers)
}

func TestStatsRendersTotals(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pa-1.js"),
		[]byte("a = \"Vul hier uw naam in:\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pa-2.js"),
		[]byte("b = \"Weet u zeker dat u wilt stoppen?\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("x = \"Moet niet worden meegeteld, ooit.\"\n"), 0644))

	var out bytes.Buffer
	require.NoError(t, Stats(dir, ".js", "utf-8", Config{MinLength: 10}, &out))

	rendered := out.String()
	assert.Contains(strings.ToLower(rendered), "literals")
	assert.Contains(rendered, "pa-1.js")
	assert.Contains(rendered, "pa-2.js")
	assert.NotContains(rendered, "notes.txt")
	assert.Contains(rendered, "total")
}

func TestStatsUnsupportedEncoding(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	err := Stats(t.TempDir(), ".js", "koi8-r", Config{}, &out)
	assert.EqualError(err, `unsupported encoding "koi8-r"`)
	assert.Empty(out.String())
}
