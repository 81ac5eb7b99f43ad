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

// Package validators contains custom validators for the provider schemas
package validators

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

// TypeDependentValidator ties an attribute to the namespace type declared on
// the same resource: with RequiredForType set the attribute must be present
// for that type, otherwise it may only be present for that type.
type TypeDependentValidator struct {
	AttributeName   string
	NamespaceType   string
	RequiredForType bool
}

// Description provides the description of the validator
func (v TypeDependentValidator) Description(_ context.Context) string {
	if v.RequiredForType {
		return fmt.Sprintf("%s must be set when type is %s", v.AttributeName, v.NamespaceType)
	}
	return fmt.Sprintf("%s can only be set when type is %s", v.AttributeName, v.NamespaceType)
}

// MarkdownDescription provides the markdown description of the validator
func (v TypeDependentValidator) MarkdownDescription(ctx context.Context) string {
	return v.Description(ctx)
}

// ValidateString validates a string attribute against the sibling type
// attribute
func (v TypeDependentValidator) ValidateString(ctx context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	var nsType string
	resp.Diagnostics.Append(req.Config.GetAttribute(ctx, req.Path.ParentPath().AtName("type"), &nsType)...)
	if resp.Diagnostics.HasError() {
		return
	}
	switch {
	case v.RequiredForType && nsType == v.NamespaceType && req.ConfigValue.IsNull():
		resp.Diagnostics.AddError(
			fmt.Sprintf("%s must be set", v.AttributeName),
			fmt.Sprintf("%s must be set when the namespace type is %s", v.AttributeName, v.NamespaceType))
	case !v.RequiredForType && nsType != v.NamespaceType && !req.ConfigValue.IsNull():
		resp.Diagnostics.AddError(
			fmt.Sprintf("%s must not be set", v.AttributeName),
			fmt.Sprintf("%s can only be set when the namespace type is %s, got %s", v.AttributeName, v.NamespaceType, nsType))
	}
}
