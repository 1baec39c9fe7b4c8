package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilsulima/code-snippets/internal/apperror"
	"github.com/kamilsulima/code-snippets/internal/export"
	"github.com/kamilsulima/code-snippets/internal/snippet"
)

func TestRead_NormalizesEntries(t *testing.T) {
	doc := `{
		"generator": "code-snippets",
		"version": "1.0",
		"snippets": [
			{
				"id": -5,
				"name": "greet",
				"description": "says hello",
				"code": "<?php echo 'hi'; ?>",
				"tags": "a, b ,c",
				"scope": 2,
				"active": true,
				"source_site": "example.org"
			}
		]
	}`

	records, err := export.Read(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, uint(5), r.ID())
	assert.Equal(t, "greet", r.Name())
	assert.Equal(t, "says hello", r.Desc())
	assert.Equal(t, " echo 'hi'; ", r.Code())
	assert.Equal(t, []string{"a", "b", "c"}, r.Tags())
	assert.Equal(t, snippet.ScopeFrontEnd, r.Scope())
	assert.True(t, r.Active())
	assert.False(t, r.Has("source_site"), "unknown entry keys are dropped")
}

func TestRead_TagsAsArray(t *testing.T) {
	doc := `{"snippets": [{"name": "x", "tags": ["a", " b "]}]}`

	records, err := export.Read(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a", "b"}, records[0].Tags())
}

func TestRead_MalformedJSON(t *testing.T) {
	_, err := export.Read(strings.NewReader(`{"snippets": [`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestRead_MissingSnippetsArray(t *testing.T) {
	_, err := export.Read(strings.NewReader(`{"generator": "code-snippets"}`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestRead_EmptySnippetsArray(t *testing.T) {
	records, err := export.Read(strings.NewReader(`{"snippets": []}`), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_EnvironmentAppliesToEntries(t *testing.T) {
	// An unset network flag in the document adopts the admin context.
	env := snippet.StaticEnvironment{NetworkAdmin: true}
	doc := `{"snippets": [{"name": "net"}]}`

	records, err := export.Read(strings.NewReader(doc), env)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Network())
}

func TestWriteRead_RoundTrip(t *testing.T) {
	original := []*snippet.Record{
		snippet.New(nil, map[string]any{
			"id":     3,
			"name":   "first",
			"desc":   "a snippet",
			"code":   "echo 1;",
			"tags":   "a, b",
			"scope":  1,
			"active": true,
		}),
		snippet.New(nil, map[string]any{"name": "second"}),
	}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, original))
	assert.Contains(t, buf.String(), `"generator": "code-snippets"`)

	decoded, err := export.Read(&buf, nil)
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	for i, want := range original {
		got := decoded[i]
		for _, f := range want.Fields() {
			assert.Equal(t, want.Get(f), got.Get(f), "snippet %d field %s", i, f)
		}
	}
}
