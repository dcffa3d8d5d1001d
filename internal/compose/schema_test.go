package compose

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeriq/engine/internal/schemas"
)

func TestValidateJSON_ComposedEnvelope(t *testing.T) {
	env, err := Compose(baseInputs())
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSON(string(data)))
}

func TestValidateJSON_EmptyEnvelope(t *testing.T) {
	env, err := Compose(Inputs{})
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSON(string(data)))
}

func TestValidateJSON_MissingCoreField(t *testing.T) {
	err := ValidateJSON(`{"match_score": 50}`)
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidateJSON_ScoreOutOfRange(t *testing.T) {
	env, err := Compose(baseInputs())
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["match_score"] = 150
	bad, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Error(t, ValidateJSON(string(bad)))
}
