package tests

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestMain(m *testing.M) {
	resource.TestMain(m)
}

func init() {
	resource.AddTestSweepers("namespace", &resource.Sweeper{
		Name: "namespace",
		F: func(_ string) error {
			ctx := context.Background()
			cs, err := sweepClient(ctx)
			if err != nil {
				return err
			}
			return sweepNamespaces(ctx, cs)
		},
	})
}
