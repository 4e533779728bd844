package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestAssessmentSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("assessment.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON")

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
	assert.Contains(t, schemaObj, "properties")
	assert.Contains(t, schemaObj, "required")
}

func TestAssessmentSchema_Loadable(t *testing.T) {
	data, err := os.ReadFile("assessment.schema.json")
	require.NoError(t, err)

	// A schema that gojsonschema cannot compile would fail here
	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	require.NoError(t, err, "schema should compile")
}

func TestAssessmentSchema_RequiredFields(t *testing.T) {
	data, err := os.ReadFile("assessment.schema.json")
	require.NoError(t, err)

	var schemaObj struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	assert.ElementsMatch(t,
		[]string{"score", "summary", "pros", "cons", "recommendations", "jobs"},
		schemaObj.Required)
}
