package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/aws/smithy-go"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// IsNotFound reports whether err indicates the resource does not exist on the
// remote.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsNotFound *sdtypes.NamespaceNotFound
	var opNotFound *sdtypes.OperationNotFound
	if errors.As(err, &nsNotFound) || errors.As(err, &opNotFound) {
		return true
	}
	return strings.Contains(err.Error(), "not found")
}

// DeserializeAwsError flattens a smithy API error into the code and message
// reported by the service, falling back to the plain error string.
func DeserializeAwsError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}

// FormatTime renders a remote timestamp as an RFC3339 string value. Timestamps
// are kept as strings in state so the representation stays serializable.
func FormatTime(t *time.Time) types.String {
	if t == nil {
		return types.StringNull()
	}
	return types.StringValue(t.UTC().Format(time.RFC3339))
}

// Int64FromInt32 converts an optional remote count into an int64 value.
func Int64FromInt32(v *int32) types.Int64 {
	if v == nil {
		return types.Int64Null()
	}
	return types.Int64Value(int64(*v))
}
