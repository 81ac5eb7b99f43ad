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

//go:build generate

// Package mocks contains generated mocks of the Cloud Map client interface
package mocks

//go:generate mockgen -destination servicediscovery_mock.go -package mocks -mock_names API=MockServiceDiscoveryClient github.com/cloudmap-community/terraform-provider-cloudmap/cloudmap/cloud API
