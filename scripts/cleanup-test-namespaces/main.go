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

// Deletes Cloud Map namespaces left behind by acceptance test runs. Only
// namespaces whose name carries the test prefix are touched; pass -dry-run to
// list them without deleting.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/utils"
	"github.com/fatih/color"
)

const (
	testNamePrefix = "tf-acc-"
	deleteTimeout  = 5 * time.Minute
)

func main() {
	var (
		region string
		prefix string
		dryRun bool
	)
	flag.StringVar(&region, "region", os.Getenv("AWS_REGION"), "AWS region to clean up")
	flag.StringVar(&prefix, "prefix", testNamePrefix, "only delete namespaces whose name starts with this prefix")
	flag.BoolVar(&dryRun, "dry-run", false, "list matching namespaces without deleting them")
	flag.Parse()

	ctx := context.Background()
	cfg, err := cloud.LoadConfig(ctx, cloud.Options{Region: region})
	if err != nil {
		color.Red("failed to load AWS configuration: %v", err)
		os.Exit(1)
	}
	cs := cloud.NewClientSet(cloud.SpawnClient(cfg))

	deleted, failed := 0, 0
	input := &servicediscovery.ListNamespacesInput{}
	for {
		out, err := cs.SD.ListNamespaces(ctx, input)
		if err != nil {
			color.Red("failed to list namespaces: %v", err)
			os.Exit(1)
		}
		for _, ns := range out.Namespaces {
			name := aws.ToString(ns.Name)
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if dryRun {
				color.Yellow("would delete namespace %s (%s)", name, aws.ToString(ns.Id))
				continue
			}
			opID, err := cs.DeleteNamespace(ctx, aws.ToString(ns.Id))
			if err != nil {
				color.Red("failed to delete namespace %s: %v", name, err)
				failed++
				continue
			}
			if _, err := utils.WaitOperation(ctx, opID, deleteTimeout, cs.SD); err != nil {
				color.Red("failed waiting for deletion of namespace %s: %v", name, err)
				failed++
				continue
			}
			color.Green("deleted namespace %s (%s)", name, aws.ToString(ns.Id))
			deleted++
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	color.Blue("deleted %d namespaces, %d failures", deleted, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
