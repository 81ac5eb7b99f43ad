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

// Package models contains the model structs for the Terraform schemas of the
// provider, its resources and data sources
package models

import "github.com/hashicorp/terraform-plugin-framework/types"

// Cloudmap represents the provider configuration schema
type Cloudmap struct {
	Region    types.String `tfsdk:"region"`
	Profile   types.String `tfsdk:"profile"`
	AccessKey types.String `tfsdk:"access_key"`
	SecretKey types.String `tfsdk:"secret_key"`
}
