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

// Package cloudmap contains the implementation of the Cloud Map Terraform
// provider, which manages AWS Cloud Map DNS namespaces.
package cloudmap

import (
	"context"
	"os"

	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/config"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/models"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/resources/namespace"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

var _ provider.Provider = &Cloudmap{}

// Cloudmap represents the provider for Cloud Map
type Cloudmap struct {
	version string
}

// New spawns a basic provider struct, no client. Configure must be called for
// a working client
func New(_ context.Context, version string) func() provider.Provider {
	return func() provider.Provider {
		return &Cloudmap{
			version: version,
		}
	}
}

// Metadata returns the provider metadata
func (c *Cloudmap) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "cloudmap"
	resp.Version = c.version
}

// Configure is the primary entrypoint for terraform and properly initializes
// the client
func (*Cloudmap) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var conf models.Cloudmap
	resp.Diagnostics.Append(req.Config.Get(ctx, &conf)...)
	if resp.Diagnostics.HasError() {
		return
	}

	region := firstNonEmptyString(conf.Region.ValueString(), os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION"))
	cfg, err := cloud.LoadConfig(ctx, cloud.Options{
		Region:    region,
		Profile:   conf.Profile.ValueString(),
		AccessKey: conf.AccessKey.ValueString(),
		SecretKey: conf.SecretKey.ValueString(),
	})
	if err != nil {
		resp.Diagnostics.AddError("failed to load AWS configuration", err.Error())
		return
	}

	resp.ResourceData = config.Resource{
		AwsConfig: cfg,
	}
	resp.DataSourceData = config.Datasource{
		AwsConfig: cfg,
	}
}

// providerSchema defines the provider configuration
func providerSchema() schema.Schema {
	return schema.Schema{
		Description: "Cloud Map provider manages AWS Cloud Map namespaces.",
		Attributes: map[string]schema.Attribute{
			"region": schema.StringAttribute{
				Optional:    true,
				Description: "AWS region. Falls back to AWS_REGION, then AWS_DEFAULT_REGION.",
			},
			"profile": schema.StringAttribute{
				Optional:    true,
				Description: "Shared credentials profile to use.",
			},
			"access_key": schema.StringAttribute{
				Optional:    true,
				Description: "Static AWS access key ID. Prefer the default credential chain outside of CI.",
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("secret_key")),
				},
			},
			"secret_key": schema.StringAttribute{
				Optional:    true,
				Sensitive:   true,
				Description: "Static AWS secret access key.",
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("access_key")),
				},
			},
		},
	}
}

// Schema returns the Cloudmap provider schema
func (*Cloudmap) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = providerSchema()
}

// DataSources returns a slice of functions to instantiate each Cloudmap
// DataSource
func (*Cloudmap) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		func() datasource.DataSource { return &namespace.DataSourceNamespace{} },
	}
}

// Resources returns a slice of functions to instantiate each Cloudmap
// resource
func (*Cloudmap) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		func() resource.Resource { return &namespace.Namespace{} },
	}
}

func firstNonEmptyString(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
