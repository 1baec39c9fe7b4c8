// Package export reads and writes snippet documents — the JSON files used
// to move snippets between installations. Reading feeds every entry through
// record construction, so an imported document comes out fully normalized:
// ids made absolute, code markers stripped, tags parsed, unknown keys
// dropped.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kamilsulima/code-snippets/internal/apperror"
	"github.com/kamilsulima/code-snippets/internal/snippet"
)

// Document framing. Version bumps when the entry shape changes.
const (
	Generator = "code-snippets"
	Version   = "1.0"
)

type document struct {
	Generator string           `json:"generator"`
	Version   string           `json:"version"`
	Snippets  []map[string]any `json:"snippets"`
}

// Read decodes a snippet document and constructs a record per entry.
// Entry keys outside the snippet field set are ignored, matching record
// construction. Malformed JSON or a document without a snippets array is
// apperror.ErrValidation.
func Read(r io.Reader, env snippet.Environment) ([]*snippet.Record, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperror.ValidationFailed("document",
			fmt.Sprintf("invalid snippet document: %v", err))
	}
	if doc.Snippets == nil {
		return nil, apperror.ValidationFailed("snippets",
			"document has no snippets array")
	}

	records := make([]*snippet.Record, 0, len(doc.Snippets))
	for _, entry := range doc.Snippets {
		records = append(records, snippet.New(env, entry))
	}
	return records, nil
}

// Write emits the records as a snippet document. Entry keys are the stored
// field names; encoding/json sorts map keys, so output is deterministic.
func Write(w io.Writer, records []*snippet.Record) error {
	doc := document{
		Generator: Generator,
		Version:   Version,
		Snippets:  make([]map[string]any, 0, len(records)),
	}
	for _, r := range records {
		doc.Snippets = append(doc.Snippets, entry(r))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encoding document: %w", err)
	}
	return nil
}

func entry(r *snippet.Record) map[string]any {
	return map[string]any{
		string(snippet.FieldID):      r.ID(),
		string(snippet.FieldName):    r.Name(),
		string(snippet.FieldDesc):    r.Desc(),
		string(snippet.FieldCode):    r.Code(),
		string(snippet.FieldTags):    r.Tags(),
		string(snippet.FieldScope):   int(r.Scope()),
		string(snippet.FieldActive):  r.Active(),
		string(snippet.FieldNetwork): r.Network(),
	}
}
