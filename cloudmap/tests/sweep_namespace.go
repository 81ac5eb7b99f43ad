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

package tests

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const sweepTimeout = 5 * time.Minute

// sweepNamespaces deletes namespaces left behind by interrupted acceptance
// runs, identified by the test name prefix.
func sweepNamespaces(ctx context.Context, cs *cloud.ClientSet) error {
	input := &servicediscovery.ListNamespacesInput{}
	for {
		out, err := cs.SD.ListNamespaces(ctx, input)
		if err != nil {
			return err
		}
		for _, ns := range out.Namespaces {
			name := aws.ToString(ns.Name)
			if !strings.HasPrefix(name, testNamePrefix) {
				continue
			}
			tflog.Info(ctx, "sweeping leftover namespace", map[string]any{
				"name": name,
				"id":   aws.ToString(ns.Id),
			})
			opID, err := cs.DeleteNamespace(ctx, aws.ToString(ns.Id))
			if err != nil {
				return err
			}
			if _, err := utils.WaitOperation(ctx, opID, sweepTimeout, cs.SD); err != nil {
				return err
			}
		}
		if out.NextToken == nil {
			return nil
		}
		input.NextToken = out.NextToken
	}
}
