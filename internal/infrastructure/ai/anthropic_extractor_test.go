package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/ports"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	raw := `{"items":[]}`
	assert.Equal(t, raw, extractJSON(raw))
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"items\":[{\"size\":\"M\"}]}\n```"
	assert.Equal(t, `{"items":[{"size":"M"}]}`, extractJSON(raw))
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Here is the extraction:\n{\"supplier\":\"Ocean\",\"items\":[]}\nLet me know if you need more."
	assert.Equal(t, `{"supplier":"Ocean","items":[]}`, extractJSON(raw))
}

func TestExtractJSON_NoObject(t *testing.T) {
	assert.Empty(t, extractJSON("sorry, I could not read this document"))
}

func TestBuildContent_TextKind(t *testing.T) {
	blocks, err := buildContent(ports.OracleRequest{Kind: ports.InputText, Text: "some invoice text"})
	assert.NoError(t, err)
	assert.Len(t, blocks, 1)
	assert.Equal(t, "text", blocks[0].Type)
}

func TestBuildContent_DocumentEmbedsBase64(t *testing.T) {
	blocks, err := buildContent(ports.OracleRequest{
		Kind: ports.InputDocument, Data: []byte("%PDF-1.4"), MediaType: "application/pdf",
	})
	assert.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, "document", blocks[0].Type)
	assert.Equal(t, "base64", blocks[0].Source.Type)
	assert.Equal(t, "application/pdf", blocks[0].Source.MediaType)
	assert.NotEmpty(t, blocks[0].Source.Data)
}

func TestBuildContent_UnknownKind(t *testing.T) {
	_, err := buildContent(ports.OracleRequest{Kind: "spreadsheet"})
	assert.Error(t, err)
}
