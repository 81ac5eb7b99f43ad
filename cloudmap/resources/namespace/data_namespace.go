// Copyright 2024 Cloudmap Community Maintainers
//
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package namespace

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/config"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/models"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
)

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ datasource.DataSource              = &DataSourceNamespace{}
	_ datasource.DataSourceWithConfigure = &DataSourceNamespace{}
)

// DataSourceNamespace represents a data source for a single Cloud Map
// namespace
type DataSourceNamespace struct {
	CloudmapClientSet *cloud.ClientSet
}

// Metadata returns the full name of the Namespace data source
func (*DataSourceNamespace) Metadata(_ context.Context, _ datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = "cloudmap_namespace"
}

// Configure uses provider level data to configure DataSourceNamespace's
// client
func (d *DataSourceNamespace) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}
	p, ok := req.ProviderData.(config.Datasource)
	if !ok {
		resp.Diagnostics.AddError("datasource configuration error",
			fmt.Sprintf("expected provider config, got: %T, please report this issue to the provider developers", req.ProviderData))
		return
	}
	d.CloudmapClientSet = cloud.NewClientSet(cloud.SpawnClient(p.AwsConfig))
}

// Schema returns the schema for the Namespace data source
func (*DataSourceNamespace) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = DataSourceNamespaceSchema()
}

// DataSourceNamespaceSchema defines the schema for a namespace data source.
// Lookup is either by ID or by the (name, type) pair.
func DataSourceNamespaceSchema() schema.Schema {
	return schema.Schema{
		Description: "Data source for an AWS Cloud Map DNS namespace",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "ID of the namespace. Either id or both name and type must be set.",
			},
			"name": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Name of the namespace.",
			},
			"type": schema.StringAttribute{
				Optional:    true,
				Computed:    true,
				Description: "Namespace type, DNS_PRIVATE or DNS_PUBLIC. Required when looking up by name.",
			},
			"description": schema.StringAttribute{
				Computed:    true,
				Description: "Description of the namespace.",
			},
			"arn": schema.StringAttribute{
				Computed:    true,
				Description: "ARN of the namespace.",
			},
			"hosted_zone_id": schema.StringAttribute{
				Computed:    true,
				Description: "Route 53 hosted zone backing the namespace.",
			},
			"service_count": schema.Int64Attribute{
				Computed:    true,
				Description: "Number of services registered in the namespace.",
			},
			"create_date": schema.StringAttribute{
				Computed:    true,
				Description: "Creation timestamp of the namespace in RFC3339.",
			},
		},
	}
}

// Read reads the Namespace data source's values and updates the state
func (d *DataSourceNamespace) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var model models.NamespaceData
	resp.Diagnostics.Append(req.Config.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	id := model.ID.ValueString()
	if id == "" {
		if model.Name.IsNull() || model.Type.IsNull() {
			resp.Diagnostics.AddError("insufficient namespace lookup arguments",
				"either id or both name and type must be set to look up a namespace")
			return
		}
		summary, err := d.CloudmapClientSet.NamespaceForName(ctx, model.Name.ValueString(), sdtypes.NamespaceType(model.Type.ValueString()))
		if err != nil {
			resp.Diagnostics.AddError(
				fmt.Sprintf("failed to find namespace %q", model.Name.ValueString()),
				utils.DeserializeAwsError(err))
			return
		}
		id = aws.ToString(summary.Id)
	}

	ns, err := d.CloudmapClientSet.NamespaceForID(ctx, id)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintf("failed to read namespace %q", id),
			utils.DeserializeAwsError(err))
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, model.GetUpdatedModel(ns))...)
}
