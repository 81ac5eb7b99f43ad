package main

import (
	"context"
	"flag"
	"log"

	"github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap"
	"github.com/hashicorp/terraform-plugin-framework/providerserver"
)

// version is set on build as part of the release process.
var version = "0.0.0-dev"

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to run the provider with support for debuggers like delve")
	flag.Parse()

	err := providerserver.Serve(
		context.Background(),
		cloudmap.New(context.Background(), version),
		providerserver.ServeOpts{
			Address: "registry.terraform.io/cloudmap-community/cloudmap",
			Debug:   debug,
		})
	if err != nil {
		log.Fatal(err.Error())
	}
}
