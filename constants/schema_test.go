package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaFieldsHaveKinds(t *testing.T) {
	assert.Len(t, SchemaFields, 21)
	assert.Len(t, FieldKinds, len(SchemaFields))
	for _, f := range SchemaFields {
		assert.True(t, IsSchemaField(f), "field %s missing from FieldKinds", f)
	}
	assert.False(t, IsSchemaField("_source_file"))
	assert.False(t, IsSchemaField("merchant_name"))
}

func TestSchemaFieldOrder(t *testing.T) {
	// Emission order is part of the output contract.
	assert.Equal(t, "bid_number", SchemaFields[0])
	assert.Equal(t, "value", SchemaFields[len(SchemaFields)-1])
	assert.Equal(t, []string{"contact_name", "email", "phone", "company_name"}, ContactKeys)
}

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want DocumentFormat
	}{
		{".pdf", PDF},
		{".PDF", PDF},
		{"html", HTML},
		{".htm", HTML},
		{".txt", TXT},
		{".docx", TXT},
		{"", TXT},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MapExtToFormat(tt.ext), "ext %q", tt.ext)
	}
}
