package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeysRowsByHeader(t *testing.T) {
	t.Parallel()

	in := "id,first_name,country\n1,Ada,Czechia\n2,Alan,United Kingdom\n"
	recs, err := NewParser(Options{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "1", recs[0]["id"])
	assert.Equal(t, "Ada", recs[0]["first_name"])
	assert.Equal(t, "United Kingdom", recs[1]["country"])
}

func TestParseColumnOrderIrrelevant(t *testing.T) {
	t.Parallel()

	// Same columns, different physical order: records key by name either way.
	a := "id,country\n1,Czechia\n"
	b := "country,id\nCzechia,1\n"

	ra, err := NewParser(Options{}).Parse(strings.NewReader(a))
	require.NoError(t, err)
	rb, err := NewParser(Options{}).Parse(strings.NewReader(b))
	require.NoError(t, err)

	assert.Equal(t, ra[0], rb[0])
}

func TestParseNormalizesHeaders(t *testing.T) {
	t.Parallel()

	in := "\uFEFFFirst Name,COUNTRY\nAda,Czechia\n"
	recs, err := NewParser(Options{}).Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Ada", recs[0]["first_name"])
	assert.Equal(t, "Czechia", recs[0]["country"])
}

func TestParseEmptyFieldBecomesNil(t *testing.T) {
	t.Parallel()

	in := "id,name\n1,\n"
	recs, err := NewParser(Options{TrimSpace: true}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Nil(t, recs[0]["name"])
}

func TestParseRejectsWidthMismatch(t *testing.T) {
	t.Parallel()

	in := "id,name\n1,Ada\n2\n"
	_, err := NewParser(Options{}).Parse(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParseSemicolonDelimiter(t *testing.T) {
	t.Parallel()

	in := "id;name\n1;Ada\n"
	recs, err := NewParser(Options{Comma: ';'}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Ada", recs[0]["name"])
}
