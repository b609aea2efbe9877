package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// OverlaySSM copies the parameters stored under SSM_PARAMETER_PATH into config.
// A parameter named /portfolio/prod/jwt-secret becomes JWT_SECRET. Values already
// present in the environment win over stored parameters.
//
// It is a no-op when SSM_PARAMETER_PATH is not set.
func OverlaySSM(ctx context.Context, config map[string]string) (int, error) {
	prefix := GetString(config, "SSM_PARAMETER_PATH", "")
	if prefix == "" {
		return 0, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region := GetString(config, "AWS_REGION", ""); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return 0, fmt.Errorf("load aws config: %w", err)
	}

	return overlayParameters(ctx, ssm.NewFromConfig(awsCfg), prefix, config)
}

func overlayParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string, config map[string]string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	added := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return added, fmt.Errorf("read ssm parameters under %s: %w", prefix, err)
		}

		for _, param := range page.Parameters {
			key := parameterKey(aws.ToString(param.Name))
			if key == "" {
				continue
			}
			if existing, ok := config[key]; ok && existing != "" {
				continue
			}
			config[key] = aws.ToString(param.Value)
			added++
		}
	}

	return added, nil
}

func parameterKey(name string) string {
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(base, "-", "_"))
}
