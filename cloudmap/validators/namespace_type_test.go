package validators

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
	"github.com/stretchr/testify/assert"
)

func namespaceConfig(nsType string, vpcID *string) tfsdk.Config {
	vpcValue := tftypes.NewValue(tftypes.String, nil)
	if vpcID != nil {
		vpcValue = tftypes.NewValue(tftypes.String, *vpcID)
	}
	raw := tftypes.NewValue(tftypes.Object{
		AttributeTypes: map[string]tftypes.Type{
			"type":   tftypes.String,
			"vpc_id": tftypes.String,
		},
	}, map[string]tftypes.Value{
		"type":   tftypes.NewValue(tftypes.String, nsType),
		"vpc_id": vpcValue,
	})
	return tfsdk.Config{
		Raw: raw,
		Schema: schema.Schema{
			Attributes: map[string]schema.Attribute{
				"type":   schema.StringAttribute{Required: true},
				"vpc_id": schema.StringAttribute{Optional: true},
			},
		},
	}
}

func TestTypeDependentValidator(t *testing.T) {
	vpc := "vpc-123"
	for _, tt := range []struct {
		name      string
		validator TypeDependentValidator
		nsType    string
		vpcID     *string
		wantErr   bool
	}{
		{
			name:      "required attribute present",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE", RequiredForType: true},
			nsType:    "DNS_PRIVATE",
			vpcID:     &vpc,
		},
		{
			name:      "required attribute missing",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE", RequiredForType: true},
			nsType:    "DNS_PRIVATE",
			wantErr:   true,
		},
		{
			name:      "requirement does not apply to other types",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE", RequiredForType: true},
			nsType:    "DNS_PUBLIC",
		},
		{
			name:      "restricted attribute set for wrong type",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE"},
			nsType:    "DNS_PUBLIC",
			vpcID:     &vpc,
			wantErr:   true,
		},
		{
			name:      "restricted attribute set for matching type",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE"},
			nsType:    "DNS_PRIVATE",
			vpcID:     &vpc,
		},
		{
			name:      "restricted attribute unset",
			validator: TypeDependentValidator{AttributeName: "vpc_id", NamespaceType: "DNS_PRIVATE"},
			nsType:    "DNS_PUBLIC",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			configValue := types.StringNull()
			if tt.vpcID != nil {
				configValue = types.StringValue(*tt.vpcID)
			}
			resp := &validator.StringResponse{}
			tt.validator.ValidateString(context.Background(), validator.StringRequest{
				Path:        path.Root("vpc_id"),
				ConfigValue: configValue,
				Config:      namespaceConfig(tt.nsType, tt.vpcID),
			}, resp)
			assert.Equal(t, tt.wantErr, resp.Diagnostics.HasError())
		})
	}
}
