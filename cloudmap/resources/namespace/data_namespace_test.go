package namespace

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/models"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceNamespaceSchema(t *testing.T) {
	ctx := context.Background()
	schemaResponse := &datasource.SchemaResponse{}
	(&DataSourceNamespace{}).Schema(ctx, datasource.SchemaRequest{}, schemaResponse)
	require.False(t, schemaResponse.Diagnostics.HasError())

	s := schemaResponse.Schema
	for _, name := range []string{
		"id", "name", "type", "description", "arn",
		"hosted_zone_id", "service_count", "create_date",
	} {
		assert.Contains(t, s.Attributes, name)
	}

	diags := s.ValidateImplementation(ctx)
	assert.False(t, diags.HasError(), "schema implementation is invalid: %v", diags)
}

func TestNamespaceDataModelFromRemote(t *testing.T) {
	remote := &sdtypes.Namespace{
		Id:   aws.String("ns-1"),
		Arn:  aws.String("arn:aws:servicediscovery:us-east-1:123456789012:namespace/ns-1"),
		Name: aws.String("example.com"),
		Type: sdtypes.NamespaceTypeDnsPublic,
	}

	var model models.NamespaceData
	got := model.GetUpdatedModel(remote)

	assert.Equal(t, types.StringValue("ns-1"), got.ID)
	assert.Equal(t, types.StringValue("example.com"), got.Name)
	assert.Equal(t, types.StringValue("DNS_PUBLIC"), got.Type)
	assert.True(t, got.Description.IsNull())
	assert.True(t, got.HostedZoneID.IsNull())
	assert.True(t, got.ServiceCount.IsNull())
	assert.True(t, got.CreateDate.IsNull())
}
