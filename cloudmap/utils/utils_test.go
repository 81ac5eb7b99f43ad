package utils

import (
	"fmt"
	"testing"
	"time"

	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "namespace not found type",
			err:  &sdtypes.NamespaceNotFound{},
			want: true,
		},
		{
			name: "operation not found type",
			err:  &sdtypes.OperationNotFound{},
			want: true,
		},
		{
			name: "wrapped namespace not found",
			err:  errors.Wrap(&sdtypes.NamespaceNotFound{}, "unable to request namespace"),
			want: true,
		},
		{
			name: "not found by message",
			err:  fmt.Errorf("namespace %q of type %v not found", "example.local", sdtypes.NamespaceTypeDnsPrivate),
			want: true,
		},
		{
			name: "unrelated error",
			err:  fmt.Errorf("access denied"),
			want: false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestDeserializeAwsError(t *testing.T) {
	assert.Equal(t, "", DeserializeAwsError(nil))
	assert.Equal(t, "boom", DeserializeAwsError(fmt.Errorf("boom")))
	apiErr := &sdtypes.DuplicateRequest{Message: stringPtr("request already submitted")}
	assert.Equal(t, "DuplicateRequest: request already submitted", DeserializeAwsError(apiErr))
	assert.Equal(t, "DuplicateRequest: request already submitted", DeserializeAwsError(errors.Wrap(apiErr, "unable to create namespace")))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, types.StringNull(), FormatTime(nil))
	created := time.Date(2024, 5, 17, 9, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, types.StringValue("2024-05-17T07:30:00Z"), FormatTime(&created))
}

func TestInt64FromInt32(t *testing.T) {
	assert.Equal(t, types.Int64Null(), Int64FromInt32(nil))
	count := int32(3)
	assert.Equal(t, types.Int64Value(3), Int64FromInt32(&count))
}

func stringPtr(s string) *string {
	return &s
}
