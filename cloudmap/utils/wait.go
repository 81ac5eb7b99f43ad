package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
)

// operationPollUnit is the fixed delay between operation status polls.
var operationPollUnit = 5 * time.Second

// OperationGetter is the slice of the Cloud Map API needed to poll an
// operation.
type OperationGetter interface {
	GetOperation(ctx context.Context, params *servicediscovery.GetOperationInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.GetOperationOutput, error)
}

// WaitOperation polls the given Cloud Map operation until it reaches SUCCESS,
// fails, or the timeout elapses, and returns the ID of the namespace the
// operation targeted. A FAIL status is terminal and carries the remote error
// message; it is never retried.
func WaitOperation(ctx context.Context, operationID string, timeout time.Duration, client OperationGetter) (string, error) {
	var op *sdtypes.Operation
	err := Retry(ctx, timeout, operationPollUnit, func() *RetryError {
		out, err := client.GetOperation(ctx, &servicediscovery.GetOperationInput{
			OperationId: aws.String(operationID),
		})
		if err != nil {
			return NonRetryableError(err)
		}
		if out.Operation == nil {
			return NonRetryableError(fmt.Errorf("operation %q: response was empty", operationID))
		}
		op = out.Operation
		switch op.Status {
		case sdtypes.OperationStatusSuccess:
			return nil
		case sdtypes.OperationStatusFail:
			return NonRetryableError(fmt.Errorf("operation failed: %v", aws.ToString(op.ErrorMessage)))
		default:
			return RetryableError(fmt.Errorf("expected operation to be %v but was %v", sdtypes.OperationStatusSuccess, op.Status))
		}
	})
	if err != nil {
		return "", err
	}

	target, ok := op.Targets[string(sdtypes.OperationTargetTypeNamespace)]
	if !ok {
		return "", fmt.Errorf("operation %q succeeded but has no namespace target", operationID)
	}
	return target, nil
}
