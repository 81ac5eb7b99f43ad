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

// Package cloud provides the methods to connect and talk to the AWS Cloud Map
// service discovery API.
package cloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/servicediscovery"
	"github.com/pkg/errors"
)

// Options carries the resolved provider configuration used to build an AWS
// client configuration. Empty fields fall through to the AWS default chain
// (environment, shared config, instance metadata).
type Options struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
}

// LoadConfig resolves the AWS configuration for the Cloud Map API. Explicit
// static credentials take precedence over a shared config profile, which takes
// precedence over the default chain.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "unable to load AWS configuration")
	}
	if cfg.Region == "" {
		return aws.Config{}, errors.New("no AWS region configured; set the provider 'region' attribute or the AWS_REGION environment variable")
	}
	return cfg, nil
}

var rl = newRateLimiter(defaultRequestsPerMinute)

// SpawnClient returns a Cloud Map client built from the given AWS
// configuration with the shared client-side rate limiter installed.
func SpawnClient(cfg aws.Config) *servicediscovery.Client {
	return servicediscovery.NewFromConfig(cfg, func(o *servicediscovery.Options) {
		o.APIOptions = append(o.APIOptions, rl.Install)
	})
}
