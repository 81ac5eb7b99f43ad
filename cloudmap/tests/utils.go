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
	"crypto/rand"
	"fmt"
	"os"
	"testing"

	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud"
)

// testNamePrefix marks resources created by acceptance tests so the sweeper
// can find what an interrupted run left behind.
const testNamePrefix = "tf-acc-"

func generateRandomName(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s%s-%x", testNamePrefix, prefix, b)
}

func testAccPreCheck(t *testing.T) {
	if awsRegion() == "" {
		t.Fatal("AWS_REGION or AWS_DEFAULT_REGION must be set for acceptance tests")
	}
}

func awsRegion() string {
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return os.Getenv("AWS_DEFAULT_REGION")
}

// sweepClient builds a client set outside of any provider instance, for
// sweepers and cross-checks against the remote.
func sweepClient(ctx context.Context) (*cloud.ClientSet, error) {
	cfg, err := cloud.LoadConfig(ctx, cloud.Options{Region: awsRegion()})
	if err != nil {
		return nil, err
	}
	return cloud.NewClientSet(cloud.SpawnClient(cfg)), nil
}
