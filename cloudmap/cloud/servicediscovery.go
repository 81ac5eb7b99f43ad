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

package cloud

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	sdtypes "github.com/aws/aws-sdk-go-v2/service/servicediscovery/types"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

// API is the subset of the Cloud Map control plane consumed by this provider.
// Kept narrow so resources can be tested against a gomock implementation.
type API interface {
	ListNamespaces(ctx context.Context, params *servicediscovery.ListNamespacesInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.ListNamespacesOutput, error)
	GetNamespace(ctx context.Context, params *servicediscovery.GetNamespaceInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.GetNamespaceOutput, error)
	CreatePrivateDnsNamespace(ctx context.Context, params *servicediscovery.CreatePrivateDnsNamespaceInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.CreatePrivateDnsNamespaceOutput, error)
	CreatePublicDnsNamespace(ctx context.Context, params *servicediscovery.CreatePublicDnsNamespaceInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.CreatePublicDnsNamespaceOutput, error)
	DeleteNamespace(ctx context.Context, params *servicediscovery.DeleteNamespaceInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.DeleteNamespaceOutput, error)
	GetOperation(ctx context.Context, params *servicediscovery.GetOperationInput, optFns ...func(*servicediscovery.Options)) (*servicediscovery.GetOperationOutput, error)
}

var _ API = (*servicediscovery.Client)(nil)

// ClientSet holds the Cloud Map service client together with the convenience
// lookups used across resources and data sources.
type ClientSet struct {
	SD API
}

// NewClientSet wraps the passed Cloud Map client in a client set.
func NewClientSet(client API) *ClientSet {
	return &ClientSet{SD: client}
}

// NamespaceCreate carries the desired state for a namespace create call.
type NamespaceCreate struct {
	Name string
	Type sdtypes.NamespaceType
	// Description and CreatorRequestID are only sent when set so the remote
	// defaults apply; CreatorRequestID is the idempotency token that makes a
	// retried create safe.
	Description      string
	CreatorRequestID string
	// VpcID is required for DNS_PRIVATE namespaces and must be empty otherwise.
	VpcID string
}

// ReconcileResult reports the outcome of a reconcile pass. Namespace is set
// when the final resource was fetched; OperationID is set whenever an
// asynchronous create or delete was issued.
type ReconcileResult struct {
	Changed     bool
	Namespace   *sdtypes.Namespace
	OperationID string
}

// NamespaceForID gets the namespace for a given ID and handles the error if
// the returned namespace is nil.
func (cs *ClientSet) NamespaceForID(ctx context.Context, id string) (*sdtypes.Namespace, error) {
	out, err := cs.SD.GetNamespace(ctx, &servicediscovery.GetNamespaceInput{
		Id: aws.String(id),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to request namespace with ID %q", id)
	}
	if out.Namespace == nil {
		return nil, errors.Errorf("unable to request namespace with ID %q: response was empty", id)
	}
	return out.Namespace, nil
}

// NamespaceForName lists namespaces filtered by type and returns the summary
// with an exact name match. Cloud Map does not enforce name uniqueness, so
// more than one match is reported as an error rather than guessed at.
func (cs *ClientSet) NamespaceForName(ctx context.Context, name string, nsType sdtypes.NamespaceType) (*sdtypes.NamespaceSummary, error) {
	input := &servicediscovery.ListNamespacesInput{
		Filters: []sdtypes.NamespaceFilter{
			{
				Name:      sdtypes.NamespaceFilterNameType,
				Values:    []string{string(nsType)},
				Condition: sdtypes.FilterConditionEq,
			},
		},
	}
	var matches []sdtypes.NamespaceSummary
	for {
		out, err := cs.SD.ListNamespaces(ctx, input)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list namespaces of type %v", nsType)
		}
		for _, ns := range out.Namespaces {
			if aws.ToString(ns.Name) == name {
				matches = append(matches, ns)
			}
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}
	switch len(matches) {
	case 0:
		return nil, errors.Errorf("namespace %q of type %v not found", name, nsType)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.Errorf("found %d namespaces named %q of type %v, expected at most one", len(matches), name, nsType)
	}
}

// CreateNamespace issues the type-specific create call and returns the ID of
// the asynchronous provisioning operation, not the namespace itself.
func (cs *ClientSet) CreateNamespace(ctx context.Context, create NamespaceCreate) (string, error) {
	var opID *string
	switch create.Type {
	case sdtypes.NamespaceTypeDnsPrivate:
		if create.VpcID == "" {
			return "", errors.Errorf("namespace %q: vpc_id is required for %v namespaces", create.Name, sdtypes.NamespaceTypeDnsPrivate)
		}
		input := &servicediscovery.CreatePrivateDnsNamespaceInput{
			Name: aws.String(create.Name),
			Vpc:  aws.String(create.VpcID),
		}
		if create.Description != "" {
			input.Description = aws.String(create.Description)
		}
		if create.CreatorRequestID != "" {
			input.CreatorRequestId = aws.String(create.CreatorRequestID)
		}
		out, err := cs.SD.CreatePrivateDnsNamespace(ctx, input)
		if err != nil {
			return "", errors.Wrapf(err, "unable to create private DNS namespace %q", create.Name)
		}
		opID = out.OperationId
	case sdtypes.NamespaceTypeDnsPublic:
		input := &servicediscovery.CreatePublicDnsNamespaceInput{
			Name: aws.String(create.Name),
		}
		if create.Description != "" {
			input.Description = aws.String(create.Description)
		}
		if create.CreatorRequestID != "" {
			input.CreatorRequestId = aws.String(create.CreatorRequestID)
		}
		out, err := cs.SD.CreatePublicDnsNamespace(ctx, input)
		if err != nil {
			return "", errors.Wrapf(err, "unable to create public DNS namespace %q", create.Name)
		}
		opID = out.OperationId
	default:
		return "", errors.Errorf("unsupported namespace type %q", create.Type)
	}
	if opID == nil {
		return "", errors.Errorf("create of namespace %q returned no operation ID", create.Name)
	}
	return aws.ToString(opID), nil
}

// DeleteNamespace deletes the namespace with the given ID and returns the ID
// of the asynchronous delete operation.
func (cs *ClientSet) DeleteNamespace(ctx context.Context, id string) (string, error) {
	out, err := cs.SD.DeleteNamespace(ctx, &servicediscovery.DeleteNamespaceInput{
		Id: aws.String(id),
	})
	if err != nil {
		return "", errors.Wrapf(err, "unable to delete namespace with ID %q", id)
	}
	return aws.ToString(out.OperationId), nil
}

// OperationForID gets the operation for a given ID and handles the error if
// the returned operation is nil.
func (cs *ClientSet) OperationForID(ctx context.Context, id string) (*sdtypes.Operation, error) {
	out, err := cs.SD.GetOperation(ctx, &servicediscovery.GetOperationInput{
		OperationId: aws.String(id),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to request operation with ID %q", id)
	}
	if out.Operation == nil {
		return nil, errors.Errorf("unable to request operation with ID %q: response was empty", id)
	}
	return out.Operation, nil
}

// ReconcileNamespace ensures a namespace with the desired name and type
// exists. An existing namespace is adopted as-is; its attributes are never
// diffed against the desired state. When nothing matches, a create is issued:
// with wait set the call blocks until the provisioning operation succeeds and
// returns the fetched namespace, otherwise only the operation ID is returned
// and the caller polls out-of-band.
func (cs *ClientSet) ReconcileNamespace(ctx context.Context, create NamespaceCreate, wait bool, timeout time.Duration) (ReconcileResult, error) {
	existing, err := cs.NamespaceForName(ctx, create.Name, create.Type)
	switch {
	case err == nil:
		ns, err := cs.NamespaceForID(ctx, aws.ToString(existing.Id))
		if err != nil {
			return ReconcileResult{}, err
		}
		tflog.Info(ctx, "namespace already exists, adopting", map[string]any{
			"name": create.Name,
			"id":   aws.ToString(ns.Id),
		})
		return ReconcileResult{Namespace: ns}, nil
	case !utils.IsNotFound(err):
		return ReconcileResult{}, err
	}

	opID, err := cs.CreateNamespace(ctx, create)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !wait {
		tflog.Info(ctx, "created namespace without waiting", map[string]any{
			"name":         create.Name,
			"operation_id": opID,
		})
		return ReconcileResult{Changed: true, OperationID: opID}, nil
	}

	nsID, err := utils.WaitOperation(ctx, opID, timeout, cs.SD)
	if err != nil {
		return ReconcileResult{}, errors.Wrapf(err, "failed waiting for creation of namespace %q", create.Name)
	}
	ns, err := cs.NamespaceForID(ctx, nsID)
	if err != nil {
		return ReconcileResult{}, err
	}
	return ReconcileResult{Changed: true, Namespace: ns, OperationID: opID}, nil
}

// ReconcileNamespaceAbsent ensures no namespace with the given name and type
// exists. A missing namespace is a no-op, not an error. The returned
// OperationID allows callers to wait for the asynchronous delete to finish.
func (cs *ClientSet) ReconcileNamespaceAbsent(ctx context.Context, name string, nsType sdtypes.NamespaceType) (ReconcileResult, error) {
	existing, err := cs.NamespaceForName(ctx, name, nsType)
	if err != nil {
		if utils.IsNotFound(err) {
			tflog.Info(ctx, "namespace already absent", map[string]any{
				"name": name,
			})
			return ReconcileResult{}, nil
		}
		return ReconcileResult{}, err
	}
	opID, err := cs.DeleteNamespace(ctx, aws.ToString(existing.Id))
	if err != nil {
		return ReconcileResult{}, err
	}
	return ReconcileResult{Changed: true, OperationID: opID}, nil
}
