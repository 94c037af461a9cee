package acctl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/fujiwara/ssm-lookup/ssm"
	"github.com/fujiwara/tfstate-lookup/tfstate"
	"github.com/google/go-jsonnet"
	"github.com/google/go-jsonnet/ast"
	"github.com/google/go-jsonnet/formatter"
)

// MakeVM returns the Jsonnet VM used to evaluate params files.
func MakeVM(ctx context.Context, stsClient STSClient, ecrClient ECRClient, awsCfg aws.Config, globalOpts *GlobalOption) *jsonnet.VM {
	vm := jsonnet.MakeVM()
	for _, f := range defaultJsonnetNativeFuncs(ctx, stsClient, ecrClient) {
		vm.NativeFunction(f)
	}
	for _, f := range ssmJsonnetNativeFuncs(ctx, awsCfg) {
		vm.NativeFunction(f)
	}
	if globalOpts.TFState != "" {
		state, err := tfstate.ReadURL(ctx, globalOpts.TFState)
		if err != nil {
			slog.WarnContext(ctx, "failed to read tfstate, tfstate functions are not available", "path", globalOpts.TFState, "error", err)
		} else {
			for _, f := range state.JsonnetNativeFuncs(ctx) {
				vm.NativeFunction(f)
			}
			slog.DebugContext(ctx, "loaded tfstate", "path", globalOpts.TFState)
		}
	}
	for k, v := range globalOpts.ExtStr {
		vm.ExtVar(k, v)
	}
	for k, v := range globalOpts.ExtCode {
		vm.ExtCode(k, v)
	}
	return vm
}

func jsonToJsonnet(src []byte, filepath string) ([]byte, error) {
	s, err := formatter.Format(filepath, string(src), formatter.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to format jsonnet: %w", err)
	}
	return []byte(s), nil
}

func stringArg(fn string, args []any, i int, name string) (string, error) {
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("%s: %s must be a string", fn, name)
	}
	return s, nil
}

func defaultJsonnetNativeFuncs(ctx context.Context, stsClient STSClient, ecrClient ECRClient) []*jsonnet.NativeFunction {
	return []*jsonnet.NativeFunction{
		{
			Name:   "env",
			Params: []ast.Identifier{"name", "default"},
			Func: func(args []any) (any, error) {
				key, err := stringArg("env", args, 0, "name")
				if err != nil {
					return nil, err
				}
				if v := os.Getenv(key); v != "" {
					return v, nil
				}
				return args[1], nil
			},
		},
		{
			Name:   "mustEnv",
			Params: []ast.Identifier{"name"},
			Func: func(args []any) (any, error) {
				key, err := stringArg("mustEnv", args, 0, "name")
				if err != nil {
					return nil, err
				}
				if v, ok := os.LookupEnv(key); ok {
					return v, nil
				}
				return nil, fmt.Errorf("mustEnv: %s is not set", key)
			},
		},
		{
			Name:   "callerIdentity",
			Params: []ast.Identifier{},
			Func: func(args []any) (any, error) {
				if stsClient == nil {
					return nil, fmt.Errorf("callerIdentity: STS client is not available")
				}
				out, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
				if err != nil {
					return nil, fmt.Errorf("callerIdentity: %w", err)
				}
				return map[string]any{
					"account": aws.ToString(out.Account),
					"arn":     aws.ToString(out.Arn),
					"userId":  aws.ToString(out.UserId),
				}, nil
			},
		},
		{
			Name:   "ecrImageUri",
			Params: []ast.Identifier{"repositoryName", "imageTag"},
			Func: func(args []any) (any, error) {
				if ecrClient == nil {
					return nil, fmt.Errorf("ecrImageUri: ECR client is not available")
				}
				repositoryName, err := stringArg("ecrImageUri", args, 0, "repositoryName")
				if err != nil {
					return nil, err
				}
				imageTag, err := stringArg("ecrImageUri", args, 1, "imageTag")
				if err != nil {
					return nil, err
				}
				out, err := ecrClient.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{
					RepositoryNames: []string{repositoryName},
				})
				if err != nil {
					return nil, fmt.Errorf("ecrImageUri: %w", err)
				}
				if len(out.Repositories) == 0 {
					return nil, fmt.Errorf("ecrImageUri: repository not found: %s", repositoryName)
				}
				return fmt.Sprintf("%s:%s", aws.ToString(out.Repositories[0].RepositoryUri), imageTag), nil
			},
		},
		{
			Name:   "agentRuntimeArn",
			Params: []ast.Identifier{"region", "account", "agentRuntimeId"},
			Func: func(args []any) (any, error) {
				parts := make([]string, 3)
				for i, name := range []string{"region", "account", "agentRuntimeId"} {
					s, err := stringArg("agentRuntimeArn", args, i, name)
					if err != nil {
						return nil, err
					}
					parts[i] = s
				}
				return fmt.Sprintf("arn:aws:bedrock-agentcore:%s:%s:runtime/%s", parts[0], parts[1], parts[2]), nil
			},
		},
	}
}

// ssmJsonnetNativeFuncs exposes ssm-lookup functions as ssmLookup and friends.
func ssmJsonnetNativeFuncs(ctx context.Context, awsCfg aws.Config) []*jsonnet.NativeFunction {
	lookup := ssm.New(awsCfg, &sync.Map{})
	funcs := lookup.JsonnetNativeFuncs(ctx)
	for i, f := range funcs {
		funcs[i].Name = ToLowerCamelCase(f.Name)
	}
	return funcs
}

// ToLowerCamelCase converts a snake_case string to lowerCamelCase.
func ToLowerCamelCase(s string) string {
	parts := strings.Split(s, "_")
	result := strings.ToLower(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		result += string(r)
	}
	return result
}
