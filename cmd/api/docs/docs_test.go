package docs

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Parameters []struct {
			In     string          `json:"in"`
			Schema json.RawMessage `json:"schema"`
		} `json:"parameters"`
		Responses map[string]struct {
			Schema json.RawMessage `json:"schema"`
		} `json:"responses"`
	} `json:"paths"`
	Definitions map[string]json.RawMessage `json:"definitions"`
}

func readDoc(t *testing.T) (string, swaggerDoc) {
	t.Helper()
	raw := SwaggerInfo.ReadDoc()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return raw, doc
}

func TestSwaggerDoc_EveryOperationHasSchemas(t *testing.T) {
	_, doc := readDoc(t)
	require.NotEmpty(t, doc.Paths)

	for path, ops := range doc.Paths {
		for method, op := range ops {
			require.NotEmpty(t, op.Responses, "%s %s", method, path)
			for code, resp := range op.Responses {
				assert.NotEmpty(t, resp.Schema, "%s %s %s has no schema", method, path, code)
			}
			for _, p := range op.Parameters {
				if p.In == "body" {
					assert.NotEmpty(t, p.Schema, "%s %s body has no schema", method, path)
				}
			}
		}
	}
}

func TestSwaggerDoc_ReferencesResolve(t *testing.T) {
	raw, doc := readDoc(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, m := range refs {
		assert.Contains(t, doc.Definitions, m[1])
	}
	for _, name := range []string{"dto.AnswerResponse", "dto.QuizSessionResponse", "dto.VerseResponse", "domain.Passage", "middleware.ErrorResponse"} {
		assert.Contains(t, doc.Definitions, name)
	}
}

func TestSwaggerDoc_AnswerEndpoint(t *testing.T) {
	_, doc := readDoc(t)

	op := doc.Paths["/quiz/sessions/{sessionId}/answer"]["post"]
	assert.JSONEq(t, `{"$ref": "#/definitions/dto.AnswerResponse"}`, string(op.Responses["200"].Schema))
	assert.JSONEq(t, `{"$ref": "#/definitions/middleware.ErrorResponse"}`, string(op.Responses["409"].Schema))
}
