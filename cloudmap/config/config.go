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

// Package config contains the configuration structs handed from the provider
// to its resources and data sources
package config

import "github.com/aws/aws-sdk-go-v2/aws"

// Resource is the configuration for resources
type Resource struct {
	AwsConfig aws.Config
}

// Datasource is the configuration for data sources
type Datasource struct {
	AwsConfig aws.Config
}
