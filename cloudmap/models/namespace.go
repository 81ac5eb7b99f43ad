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

package models

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Namespace represents the namespace resource schema
type Namespace struct {
	Name             types.String   `tfsdk:"name"`
	Type             types.String   `tfsdk:"type"`
	VpcID            types.String   `tfsdk:"vpc_id"`
	Description      types.String   `tfsdk:"description"`
	CreatorRequestID types.String   `tfsdk:"creator_request_id"`
	Wait             types.Bool     `tfsdk:"wait"`
	ID               types.String   `tfsdk:"id"`
	Arn              types.String   `tfsdk:"arn"`
	HostedZoneID     types.String   `tfsdk:"hosted_zone_id"`
	ServiceCount     types.Int64    `tfsdk:"service_count"`
	CreateDate       types.String   `tfsdk:"create_date"`
	OperationID      types.String   `tfsdk:"operation_id"`
	Timeouts         timeouts.Value `tfsdk:"timeouts"`
}

// ContingentFields are the fields that must be preserved from the plan or
// prior state rather than read back from the remote: the Cloud Map API either
// does not echo them or echoes defaulted values that would conflict with an
// unset optional attribute.
type ContingentFields struct {
	VpcID            types.String
	Description      types.String
	CreatorRequestID types.String
	Wait             types.Bool
	OperationID      types.String
	Timeouts         timeouts.Value
}

// GetUpdatedModel builds the state model from a remote namespace, carrying the
// contingent fields through unchanged.
func (*Namespace) GetUpdatedModel(ns *sdtypes.Namespace, contingent ContingentFields) *Namespace {
	model := &Namespace{
		Name:             types.StringValue(aws.ToString(ns.Name)),
		Type:             types.StringValue(string(ns.Type)),
		VpcID:            contingent.VpcID,
		Description:      contingent.Description,
		CreatorRequestID: contingent.CreatorRequestID,
		Wait:             contingent.Wait,
		ID:               types.StringValue(aws.ToString(ns.Id)),
		Arn:              types.StringValue(aws.ToString(ns.Arn)),
		HostedZoneID:     types.StringNull(),
		ServiceCount:     utils.Int64FromInt32(ns.ServiceCount),
		CreateDate:       utils.FormatTime(ns.CreateDate),
		OperationID:      contingent.OperationID,
		Timeouts:         contingent.Timeouts,
	}
	if ns.Properties != nil && ns.Properties.DnsProperties != nil {
		if id := ns.Properties.DnsProperties.HostedZoneId; id != nil {
			model.HostedZoneID = types.StringValue(*id)
		}
	}
	return model
}

// NamespaceData represents the namespace data source schema
type NamespaceData struct {
	ID           types.String `tfsdk:"id"`
	Name         types.String `tfsdk:"name"`
	Type         types.String `tfsdk:"type"`
	Description  types.String `tfsdk:"description"`
	Arn          types.String `tfsdk:"arn"`
	HostedZoneID types.String `tfsdk:"hosted_zone_id"`
	ServiceCount types.Int64  `tfsdk:"service_count"`
	CreateDate   types.String `tfsdk:"create_date"`
}

// GetUpdatedModel populates the data source model from a remote namespace.
// Unlike the resource model there is no plan to preserve, so every field
// comes from the remote.
func (*NamespaceData) GetUpdatedModel(ns *sdtypes.Namespace) *NamespaceData {
	model := &NamespaceData{
		ID:           types.StringValue(aws.ToString(ns.Id)),
		Name:         types.StringValue(aws.ToString(ns.Name)),
		Type:         types.StringValue(string(ns.Type)),
		Description:  types.StringNull(),
		Arn:          types.StringValue(aws.ToString(ns.Arn)),
		HostedZoneID: types.StringNull(),
		ServiceCount: utils.Int64FromInt32(ns.ServiceCount),
		CreateDate:   utils.FormatTime(ns.CreateDate),
	}
	if ns.Description != nil {
		model.Description = types.StringValue(*ns.Description)
	}
	if ns.Properties != nil && ns.Properties.DnsProperties != nil {
		if id := ns.Properties.DnsProperties.HostedZoneId; id != nil {
			model.HostedZoneID = types.StringValue(*id)
		}
	}
	return model
}
