package cloudmap

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSchema(t *testing.T) {
	ctx := context.Background()
	p := New(ctx, "test")()

	schemaResponse := &provider.SchemaResponse{}
	p.Schema(ctx, provider.SchemaRequest{}, schemaResponse)
	require.False(t, schemaResponse.Diagnostics.HasError())

	s := schemaResponse.Schema
	for _, name := range []string{"region", "profile", "access_key", "secret_key"} {
		assert.Contains(t, s.Attributes, name)
	}
	assert.True(t, s.Attributes["secret_key"].IsSensitive())

	diags := s.ValidateImplementation(ctx)
	assert.False(t, diags.HasError(), "schema implementation is invalid: %v", diags)
}

func TestProviderMetadata(t *testing.T) {
	ctx := context.Background()
	p := New(ctx, "0.1.0")()

	metadataResponse := &provider.MetadataResponse{}
	p.Metadata(ctx, provider.MetadataRequest{}, metadataResponse)
	assert.Equal(t, "cloudmap", metadataResponse.TypeName)
	assert.Equal(t, "0.1.0", metadataResponse.Version)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "", firstNonEmptyString())
	assert.Equal(t, "a", firstNonEmptyString("", "a", "b"))
	assert.Equal(t, "b", firstNonEmptyString("b", "a"))
}
