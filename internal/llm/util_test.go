package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"score": 80}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestExtractJSONObject_Plain(t *testing.T) {
	input := `{"a": 1, "b": {"c": 2}}`
	assert.Equal(t, input, ExtractJSONObject(input))
}

func TestExtractJSONObject_SurroundedByCommentary(t *testing.T) {
	input := `Sure! Here is the analysis you asked for: {"score": 75, "note": "ok"} Hope that helps.`
	assert.Equal(t, `{"score": 75, "note": "ok"}`, ExtractJSONObject(input))
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	input := `{"reasoning": "uses {braces} and \"quotes\" inside"}`
	assert.Equal(t, input, ExtractJSONObject(input))
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject("no json here"))
	assert.Equal(t, "", ExtractJSONObject(""))
}

func TestExtractJSONObject_Unbalanced(t *testing.T) {
	assert.Equal(t, "", ExtractJSONObject(`{"a": 1`))
}
