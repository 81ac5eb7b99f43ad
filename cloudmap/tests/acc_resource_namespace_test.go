package tests

import (
	"fmt"
	"os"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccNamespacePublic(t *testing.T) {
	name := fmt.Sprintf("%s.example.com", generateRandomName("pub"))
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
provider "cloudmap" {}

resource "cloudmap_namespace" "test" {
  name = %q
  type = "DNS_PUBLIC"
}
`, name),
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "name", name),
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "type", "DNS_PUBLIC"),
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "wait", "true"),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "id"),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "arn"),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "hosted_zone_id"),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "create_date"),
				),
			},
			{
				ResourceName:      "cloudmap_namespace.test",
				ImportState:       true,
				ImportStateVerify: true,
				ImportStateVerifyIgnore: []string{
					"wait", "timeouts", "operation_id",
					"description", "creator_request_id", "vpc_id",
				},
			},
		},
	})
}

func TestAccNamespacePrivate(t *testing.T) {
	vpcID := os.Getenv("CLOUDMAP_TEST_VPC_ID")
	name := fmt.Sprintf("%s.local", generateRandomName("priv"))
	resource.Test(t, resource.TestCase{
		PreCheck: func() {
			testAccPreCheck(t)
			if vpcID == "" {
				t.Skip("CLOUDMAP_TEST_VPC_ID must be set for private namespace tests")
			}
		},
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
provider "cloudmap" {}

resource "cloudmap_namespace" "test" {
  name        = %q
  type        = "DNS_PRIVATE"
  vpc_id      = %q
  description = "acceptance test namespace"
}
`, name, vpcID),
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "name", name),
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "type", "DNS_PRIVATE"),
					resource.TestCheckResourceAttr("cloudmap_namespace.test", "vpc_id", vpcID),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "id"),
					resource.TestCheckResourceAttrSet("cloudmap_namespace.test", "hosted_zone_id"),
				),
			},
		},
	})
}

func TestAccNamespaceDataSource(t *testing.T) {
	name := fmt.Sprintf("%s.example.com", generateRandomName("data"))
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
provider "cloudmap" {}

resource "cloudmap_namespace" "test" {
  name = %q
  type = "DNS_PUBLIC"
}

data "cloudmap_namespace" "by_name" {
  name = cloudmap_namespace.test.name
  type = cloudmap_namespace.test.type
}
`, name),
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttrPair("data.cloudmap_namespace.by_name", "id", "cloudmap_namespace.test", "id"),
					resource.TestCheckResourceAttrPair("data.cloudmap_namespace.by_name", "arn", "cloudmap_namespace.test", "arn"),
					resource.TestCheckResourceAttr("data.cloudmap_namespace.by_name", "name", name),
				),
			},
		},
	})
}
