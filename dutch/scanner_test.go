package dutch

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanString(t *testing.T, src string, cfg Config) []Match {
	t.Helper()
	var got []Match
	err := Scan(strings.NewReader(src), cfg, func(m Match) error {
		got = append(got, m)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestEmittedAtThreshold(t *testing.T) {
	assert := assert.New(t)

	// "ab, c" is exactly 5 characters
	got := scanString(t, `x = "ab, c";`, Config{MinLength: 5})
	assert.Equal([]Match{{Line: 1, Text: "ab, c"}}, got)
}

func TestRejectedBelowThreshold(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `x = "a, c";`, Config{MinLength: 5})
	assert.Empty(got)
}

func TestNoPunctuationRejected(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `id = "user_id_12345"`, Config{MinLength: 10})
	assert.Empty(got)
}

func TestDottedIdentifierRejected(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `x = "a.b.c";`, Config{MinLength: 5})
	assert.Empty(got)
}

func TestDottedIdentifierWithSurroundingTextEmitted(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `x = "Hello, world! (com.example.Foo)";`, Config{MinLength: 5})
	assert.Equal([]Match{{Line: 1, Text: "Hello, world! (com.example.Foo)"}}, got)
}

func TestDottedIdentifierTrimmedBeforeShapeTest(t *testing.T) {
	assert := assert.New(t)

	// whitespace padding passes the presence test but not the shape test
	got := scanString(t, `x = " com.example.Foo ";`, Config{MinLength: 5})
	assert.Empty(got)
}

func TestUserFacingSentenceEmitted(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `msg = "Please enter your name:"`, Config{MinLength: 20})
	assert.Equal([]Match{{Line: 1, Text: "Please enter your name:"}}, got)
}

func TestEscapedQuotesStayInsideLiteral(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `msg = "she said \"hi\" to the group"`, Config{MinLength: 5})
	assert.Equal([]Match{{Line: 1, Text: `she said \"hi\" to the group`}}, got)
}

func TestSingleQuotedLiterals(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `msg = 'Uw aangifte is verzonden.'`, Config{MinLength: 10})
	assert.Equal([]Match{{Line: 1, Text: "Uw aangifte is verzonden."}}, got)
}

func TestUnterminatedLiteralSkipped(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, `msg = "Vul hier uw naam in:" + "dangling`, Config{MinLength: 5})
	assert.Equal([]Match{{Line: 1, Text: "Vul hier uw naam in:"}}, got)
}

func TestDiscoveryOrder(t *testing.T) {
	assert := assert.New(t)

	src := `a = "eerste tekst." ; b = 'tweede tekst.'
c = "derde tekst."
d = "x.y.z"
e = "vierde tekst."`
	got := scanString(t, src, Config{MinLength: 10})
	assert.Equal([]Match{
		{Line: 1, Text: "eerste tekst."},
		{Line: 1, Text: "tweede tekst."},
		{Line: 2, Text: "derde tekst."},
		{Line: 4, Text: "vierde tekst."},
	}, got)
}

func TestEmptyInput(t *testing.T) {
	assert := assert.New(t)

	got := scanString(t, "", Config{MinLength: 5})
	assert.Empty(got)
}

func TestRepeatedLiteralsNotDeduplicated(t *testing.T) {
	assert := assert.New(t)

	src := "a = \"Klik hier om door te gaan.\"\nb = \"Klik hier om door te gaan.\"\n"
	got := scanString(t, src, Config{MinLength: 10})
	assert.Equal([]Match{
		{Line: 1, Text: "Klik hier om door te gaan."},
		{Line: 2, Text: "Klik hier om door te gaan."},
	}, got)
}

func TestScanIsRepeatable(t *testing.T) {
	assert := assert.New(t)

	src := `a = "eerste tekst." ; b = "p.q.r" ; c = 'tweede tekst.'`
	first := scanString(t, src, Config{MinLength: 10})
	second := scanString(t, src, Config{MinLength: 10})
	assert.Equal(first, second)
}

func TestDefaultMinLength(t *testing.T) {
	assert := assert.New(t)

	// 28 characters misses the default threshold, 30 makes it
	short := "Vul alstublieft uw naam in.."
	long := "Vul alstublieft uw naam in...."
	require.Equal(t, 28, len([]rune(short)))
	require.Equal(t, 30, len([]rune(long)))

	got := scanString(t, `a = "`+short+`"`+"\n"+`b = "`+long+`"`, Config{})
	assert.Equal([]Match{{Line: 2, Text: long}}, got)
}

func TestLengthCountsCharactersNotBytes(t *testing.T) {
	assert := assert.New(t)

	// 5 characters, 7 bytes
	got := scanString(t, `x = "één, "`, Config{MinLength: 5})
	assert.Equal([]Match{{Line: 1, Text: "één, "}}, got)
}

func TestClassifyVerdicts(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{MinLength: 5}
	assert.Equal(tooShort, classify("a,b", cfg))
	assert.Equal(noPunctuation, classify("user_id_12345", cfg))
	assert.Equal(identifierShaped, classify("com.example.Foo", cfg))
	assert.Equal(accepted, classify("Weet u het zeker?", cfg))
}

func TestEmitErrorStopsScan(t *testing.T) {
	boom := errors.New("boom")

	src := "a = \"eerste tekst.\"\nb = \"tweede tekst.\"\n"
	calls := 0
	err := Scan(strings.NewReader(src), Config{MinLength: 5}, func(m Match) error {
		calls++
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}
