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

// Package namespace contains the implementation of the Namespace resource and
// data source following the Terraform framework interfaces
package namespace

import (
	"context"
	"fmt"
	"time"

	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/config"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/models"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/validators"
	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/booldefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// defaultNamespaceTimeout is how long a create or delete may poll its Cloud
// Map operation before giving up.
const defaultNamespaceTimeout = 5 * time.Minute

// Ensure provider defined types fully satisfy framework interfaces.
var (
	_ resource.Resource                = &Namespace{}
	_ resource.ResourceWithConfigure   = &Namespace{}
	_ resource.ResourceWithImportState = &Namespace{}
)

// Namespace represents a namespace managed resource
type Namespace struct {
	CloudmapClientSet *cloud.ClientSet
}

// Metadata returns the full name of the Namespace resource
func (*Namespace) Metadata(_ context.Context, _ resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = "cloudmap_namespace"
}

// Configure uses provider level data to configure Namespace's client
func (n *Namespace) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}
	p, ok := req.ProviderData.(config.Resource)
	if !ok {
		resp.Diagnostics.AddError("resource configuration error",
			fmt.Sprintf("expected provider config, got: %T, please report this issue to the provider developers", req.ProviderData))
		return
	}
	n.CloudmapClientSet = cloud.NewClientSet(cloud.SpawnClient(p.AwsConfig))
}

// Schema returns the schema for the Namespace resource
func (*Namespace) Schema(ctx context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = ResourceNamespaceSchema(ctx)
}

// ResourceNamespaceSchema defines the schema for a Cloud Map namespace.
// Namespaces cannot be modified in place, so every user-settable attribute
// forces a replacement.
func ResourceNamespaceSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		Description: "Ensures a Cloud Map DNS namespace with the given name and type exists. An existing namespace is adopted rather than recreated.",
		Attributes: map[string]schema.Attribute{
			"name": schema.StringAttribute{
				Required:      true,
				Description:   "Name of the namespace, which is also the DNS domain registered for it.",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"type": schema.StringAttribute{
				Required:      true,
				Description:   "Namespace type. DNS_PRIVATE namespaces resolve inside the associated VPC only.",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
				Validators: []validator.String{
					stringvalidator.OneOf(
						string(sdtypes.NamespaceTypeDnsPrivate),
						string(sdtypes.NamespaceTypeDnsPublic),
					),
				},
			},
			"vpc_id": schema.StringAttribute{
				Optional:      true,
				Description:   "VPC to associate the namespace with. Required for DNS_PRIVATE namespaces and forbidden otherwise.",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
				Validators: []validator.String{
					validators.TypeDependentValidator{
						AttributeName:   "vpc_id",
						NamespaceType:   string(sdtypes.NamespaceTypeDnsPrivate),
						RequiredForType: true,
					},
					validators.TypeDependentValidator{
						AttributeName: "vpc_id",
						NamespaceType: string(sdtypes.NamespaceTypeDnsPrivate),
					},
				},
			},
			"description": schema.StringAttribute{
				Optional:      true,
				Description:   "Description of the namespace. Only sent on create; an adopted namespace keeps its remote description.",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"creator_request_id": schema.StringAttribute{
				Optional:      true,
				Description:   "Idempotency token forwarded to the create call. Retrying a create with the same token is safe.",
				PlanModifiers: []planmodifier.String{stringplanmodifier.RequiresReplace()},
			},
			"wait": schema.BoolAttribute{
				Optional:    true,
				Computed:    true,
				Default:     booldefault.StaticBool(true),
				Description: "Whether to wait for the provisioning operation to finish. When false, only operation_id is known after create.",
			},
			"id": schema.StringAttribute{
				Computed:    true,
				Description: "ID of the namespace.",
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
			"operation_id": schema.StringAttribute{
				Computed:    true,
				Description: "ID of the asynchronous operation issued by the most recent create.",
			},
			"timeouts": timeouts.Attributes(ctx, timeouts.Opts{
				Create: true,
				Delete: true,
			}),
		},
	}
}

// Create creates a new Namespace resource, or adopts an existing namespace
// with the matching name and type
func (n *Namespace) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var model models.Namespace
	resp.Diagnostics.Append(req.Plan.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}
	timeout, diags := model.Timeouts.Create(ctx, defaultNamespaceTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	wait := model.Wait.ValueBool()
	result, err := n.CloudmapClientSet.ReconcileNamespace(ctx, cloud.NamespaceCreate{
		Name:             model.Name.ValueString(),
		Type:             sdtypes.NamespaceType(model.Type.ValueString()),
		Description:      model.Description.ValueString(),
		CreatorRequestID: model.CreatorRequestID.ValueString(),
		VpcID:            model.VpcID.ValueString(),
	}, wait, timeout)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintf("failed to create namespace %q", model.Name.ValueString()),
			utils.DeserializeAwsError(err))
		return
	}

	operationID := types.StringNull()
	if result.OperationID != "" {
		operationID = types.StringValue(result.OperationID)
	}
	if result.Namespace == nil {
		// Create was issued without waiting. Computed attributes stay null
		// until the next refresh adopts the provisioned namespace by name.
		model.ID = types.StringNull()
		model.Arn = types.StringNull()
		model.HostedZoneID = types.StringNull()
		model.ServiceCount = types.Int64Null()
		model.CreateDate = types.StringNull()
		model.OperationID = operationID
		resp.Diagnostics.Append(resp.State.Set(ctx, &model)...)
		return
	}

	persist := model.GetUpdatedModel(result.Namespace, models.ContingentFields{
		VpcID:            model.VpcID,
		Description:      model.Description,
		CreatorRequestID: model.CreatorRequestID,
		Wait:             model.Wait,
		OperationID:      operationID,
		Timeouts:         model.Timeouts,
	})
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Read reads Namespace resource's values and updates the state
func (n *Namespace) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var model models.Namespace
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}

	id := model.ID.ValueString()
	if id == "" {
		// Created with wait = false; the namespace may have finished
		// provisioning since, so adopt it by name.
		summary, err := n.CloudmapClientSet.NamespaceForName(ctx, model.Name.ValueString(), sdtypes.NamespaceType(model.Type.ValueString()))
		if err != nil {
			if utils.IsNotFound(err) {
				resp.Diagnostics.Append(resp.State.Set(ctx, &model)...)
				return
			}
			resp.Diagnostics.AddError(
				fmt.Sprintf("failed to look up namespace %q", model.Name.ValueString()),
				utils.DeserializeAwsError(err))
			return
		}
		id = *summary.Id
	}

	ns, err := n.CloudmapClientSet.NamespaceForID(ctx, id)
	if err != nil {
		if utils.IsNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(
			fmt.Sprintf("failed to read namespace %q", id),
			utils.DeserializeAwsError(err))
		return
	}

	persist := model.GetUpdatedModel(ns, models.ContingentFields{
		VpcID:            model.VpcID,
		Description:      model.Description,
		CreatorRequestID: model.CreatorRequestID,
		Wait:             model.Wait,
		OperationID:      model.OperationID,
		Timeouts:         model.Timeouts,
	})
	resp.Diagnostics.Append(resp.State.Set(ctx, persist)...)
}

// Update copies the plan into state. Every attribute that reaches the remote
// requires a replacement, so only provider-side fields like wait and timeouts
// can change here.
func (*Namespace) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan models.Namespace
	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}
	resp.Diagnostics.Append(resp.State.Set(ctx, &plan)...)
}

// Delete deletes the Namespace resource. A namespace already gone on the
// remote is treated as deleted
func (n *Namespace) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var model models.Namespace
	resp.Diagnostics.Append(req.State.Get(ctx, &model)...)
	if resp.Diagnostics.HasError() {
		return
	}
	timeout, diags := model.Timeouts.Delete(ctx, defaultNamespaceTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	result, err := n.CloudmapClientSet.ReconcileNamespaceAbsent(ctx, model.Name.ValueString(), sdtypes.NamespaceType(model.Type.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintf("failed to delete namespace %q", model.Name.ValueString()),
			utils.DeserializeAwsError(err))
		return
	}
	if !result.Changed || !model.Wait.ValueBool() {
		return
	}
	if _, err := utils.WaitOperation(ctx, result.OperationID, timeout, n.CloudmapClientSet.SD); err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintf("failed waiting for deletion of namespace %q", model.Name.ValueString()),
			utils.DeserializeAwsError(err))
	}
}

// ImportState imports a namespace by its ID
func (*Namespace) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}
