package acctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

//go:generate go tool mockgen -source=aws.go -destination=./mock_test.go -package=acctl
type BedrockAgentCoreControlClient interface {
	CreateAgentRuntime(ctx context.Context, params *bedrockagentcorecontrol.CreateAgentRuntimeInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateAgentRuntimeOutput, error)
	UpdateAgentRuntime(ctx context.Context, params *bedrockagentcorecontrol.UpdateAgentRuntimeInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateAgentRuntimeOutput, error)
	GetAgentRuntime(ctx context.Context, params *bedrockagentcorecontrol.GetAgentRuntimeInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetAgentRuntimeOutput, error)
	DeleteAgentRuntime(ctx context.Context, params *bedrockagentcorecontrol.DeleteAgentRuntimeInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.DeleteAgentRuntimeOutput, error)
	CreateAgentRuntimeEndpoint(ctx context.Context, params *bedrockagentcorecontrol.CreateAgentRuntimeEndpointInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateAgentRuntimeEndpointOutput, error)
	UpdateAgentRuntimeEndpoint(ctx context.Context, params *bedrockagentcorecontrol.UpdateAgentRuntimeEndpointInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateAgentRuntimeEndpointOutput, error)
	GetAgentRuntimeEndpoint(ctx context.Context, params *bedrockagentcorecontrol.GetAgentRuntimeEndpointInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetAgentRuntimeEndpointOutput, error)
	CreateBrowser(ctx context.Context, params *bedrockagentcorecontrol.CreateBrowserInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateBrowserOutput, error)
	GetBrowser(ctx context.Context, params *bedrockagentcorecontrol.GetBrowserInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetBrowserOutput, error)
	CreateCodeInterpreter(ctx context.Context, params *bedrockagentcorecontrol.CreateCodeInterpreterInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateCodeInterpreterOutput, error)
	GetCodeInterpreter(ctx context.Context, params *bedrockagentcorecontrol.GetCodeInterpreterInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetCodeInterpreterOutput, error)
	CreateGateway(ctx context.Context, params *bedrockagentcorecontrol.CreateGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateGatewayOutput, error)
	UpdateGateway(ctx context.Context, params *bedrockagentcorecontrol.UpdateGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateGatewayOutput, error)
	GetGateway(ctx context.Context, params *bedrockagentcorecontrol.GetGatewayInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetGatewayOutput, error)
	CreateApiKeyCredentialProvider(ctx context.Context, params *bedrockagentcorecontrol.CreateApiKeyCredentialProviderInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateApiKeyCredentialProviderOutput, error)
	UpdateApiKeyCredentialProvider(ctx context.Context, params *bedrockagentcorecontrol.UpdateApiKeyCredentialProviderInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateApiKeyCredentialProviderOutput, error)
	GetApiKeyCredentialProvider(ctx context.Context, params *bedrockagentcorecontrol.GetApiKeyCredentialProviderInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetApiKeyCredentialProviderOutput, error)
	CreateWorkloadIdentity(ctx context.Context, params *bedrockagentcorecontrol.CreateWorkloadIdentityInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.CreateWorkloadIdentityOutput, error)
	UpdateWorkloadIdentity(ctx context.Context, params *bedrockagentcorecontrol.UpdateWorkloadIdentityInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.UpdateWorkloadIdentityOutput, error)
	GetWorkloadIdentity(ctx context.Context, params *bedrockagentcorecontrol.GetWorkloadIdentityInput, optFns ...func(*bedrockagentcorecontrol.Options)) (*bedrockagentcorecontrol.GetWorkloadIdentityOutput, error)
}

type BedrockAgentCoreClient interface {
	InvokeAgentRuntime(ctx context.Context, params *bedrockagentcore.InvokeAgentRuntimeInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.InvokeAgentRuntimeOutput, error)
}

type ECRClient interface {
	DescribeRepositories(ctx context.Context, params *ecr.DescribeRepositoriesInput, optFns ...func(*ecr.Options)) (*ecr.DescribeRepositoriesOutput, error)
}

type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// binding performs one operation target with the SDK.
type binding func(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error)

// unionField is a top level input field whose SDK type is a union interface.
// encoding/json cannot decode those, so they are converted separately.
type unionField struct {
	field   string
	convert func(v any, strict bool) (any, error)
}

var (
	agentRuntimeArtifactField       = unionField{"AgentRuntimeArtifact", convertToAgentRuntimeArtifact}
	authorizerConfigurationField    = unionField{"AuthorizerConfiguration", convertToAuthorizerConfiguration}
	requestHeaderConfigurationField = unionField{"RequestHeaderConfiguration", convertToRequestHeaderConfiguration}
	gatewayProtocolField            = unionField{"ProtocolConfiguration", convertToGatewayProtocolConfiguration}
)

// sdkCaller is the Caller backed by the AWS SDK clients.
type sdkCaller struct {
	bindings map[string]binding
}

func newSDKCaller(ctrl BedrockAgentCoreControlClient, client BedrockAgentCoreClient) *sdkCaller {
	return &sdkCaller{bindings: map[string]binding{
		"CreateAgentRuntime": bindControl(ctrl.CreateAgentRuntime,
			agentRuntimeArtifactField, authorizerConfigurationField, requestHeaderConfigurationField),
		"UpdateAgentRuntime": bindControl(ctrl.UpdateAgentRuntime,
			agentRuntimeArtifactField, authorizerConfigurationField, requestHeaderConfigurationField),
		"GetAgentRuntime":                bindControl(ctrl.GetAgentRuntime),
		"DeleteAgentRuntime":             bindControl(ctrl.DeleteAgentRuntime),
		"CreateAgentRuntimeEndpoint":     bindControl(ctrl.CreateAgentRuntimeEndpoint),
		"UpdateAgentRuntimeEndpoint":     bindControl(ctrl.UpdateAgentRuntimeEndpoint),
		"GetAgentRuntimeEndpoint":        bindControl(ctrl.GetAgentRuntimeEndpoint),
		"CreateBrowser":                  bindControl(ctrl.CreateBrowser),
		"GetBrowser":                     bindControl(ctrl.GetBrowser),
		"CreateCodeInterpreter":          bindControl(ctrl.CreateCodeInterpreter),
		"GetCodeInterpreter":             bindControl(ctrl.GetCodeInterpreter),
		"CreateGateway":                  bindControl(ctrl.CreateGateway, authorizerConfigurationField, gatewayProtocolField),
		"UpdateGateway":                  bindControl(ctrl.UpdateGateway, authorizerConfigurationField, gatewayProtocolField),
		"GetGateway":                     bindControl(ctrl.GetGateway),
		"CreateApiKeyCredentialProvider": bindControl(ctrl.CreateApiKeyCredentialProvider),
		"UpdateApiKeyCredentialProvider": bindControl(ctrl.UpdateApiKeyCredentialProvider),
		"GetApiKeyCredentialProvider":    bindControl(ctrl.GetApiKeyCredentialProvider),
		"CreateWorkloadIdentity":         bindControl(ctrl.CreateWorkloadIdentity),
		"UpdateWorkloadIdentity":         bindControl(ctrl.UpdateWorkloadIdentity),
		"GetWorkloadIdentity":            bindControl(ctrl.GetWorkloadIdentity),
		"InvokeAgentRuntime":             bindInvokeAgentRuntime(client),
	}}
}

func (c *sdkCaller) Call(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error) {
	b, ok := c.bindings[op.Target]
	if !ok {
		return nil, fmt.Errorf("%w: no SDK binding for target %s", ErrOperationNotFound, op.Target)
	}
	return b(ctx, op, request)
}

// Targets returns the operation targets the SDK caller can perform.
func (c *sdkCaller) Targets() []string {
	targets := make([]string, 0, len(c.bindings))
	for t := range c.bindings {
		targets = append(targets, t)
	}
	slices.Sort(targets)
	return targets
}

func bindControl[In, Out any](
	call func(context.Context, *In, ...func(*bedrockagentcorecontrol.Options)) (*Out, error),
	unions ...unionField,
) binding {
	return func(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error) {
		in, err := decodeInput[In](ctx, op, request, unions)
		if err != nil {
			return nil, err
		}
		out, err := call(ctx, in)
		if err != nil {
			return nil, err
		}
		return responseToMap(out)
	}
}

// decodeInput converts a built request into an SDK input. Fields the SDK
// does not know are reported and dropped.
func decodeInput[In any](ctx context.Context, op *OperationDescriptor, request map[string]any, unions []unionField) (*In, error) {
	mapPaths := op.Request.MapPaths()
	in, err := decodeRequest[In](request, unions, mapPaths, true)
	if err != nil {
		field := extractUnknownFieldKey(err)
		if field == "" {
			return nil, &FieldError{Kind: ErrInvalidValue, Name: op.Name, Detail: err.Error()}
		}
		slog.WarnContext(ctx, "field is not supported by the SDK and is ignored", "operation", op.Name, "field", field)
		in, err = decodeRequest[In](request, unions, mapPaths, false)
		if err != nil {
			return nil, &FieldError{Kind: ErrInvalidValue, Name: op.Name, Detail: err.Error()}
		}
	}
	return in, nil
}

func decodeRequest[In any](request map[string]any, unions []unionField, mapPaths []string, strict bool) (*In, error) {
	var in In
	bs, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	hook := func(path, key string, value any) (string, any, error) {
		for _, u := range unions {
			if !matchJSONKey(path, "$."+u.field) {
				continue
			}
			v, err := u.convert(value, strict)
			if err != nil {
				return "", nil, err
			}
			if err := assignField(&in, u.field, v, strict); err != nil {
				return "", nil, err
			}
			return key, nil, nil
		}
		return key, value, nil
	}
	err = unmarshalJSON(bs, &in, func(opts *unmarshalJSONOptions) {
		opts.hooks = append(opts.hooks, hook)
		opts.strict = strict
		opts.ignoreUpperCamelPaths = append(opts.ignoreUpperCamelPaths, mapKeyPaths(mapPaths)...)
	})
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func assignField(dst any, field string, v any, strict bool) error {
	if v == nil {
		return nil
	}
	f := reflect.ValueOf(dst).Elem().FieldByName(field)
	if !f.IsValid() {
		if strict {
			return fmt.Errorf("%s%q", unknownFieldPrefix, field)
		}
		return nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("cannot use %T as %s", v, field)
	}
	f.Set(rv)
	return nil
}

// decodeUnionMember decodes the member key of a union object into dst.
// It reports false when the member is not set.
func decodeUnionMember(v any, key string, dst any, strict bool) (bool, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return false, fmt.Errorf("expected an object, got %T", v)
	}
	var member any
	found := false
	for k, e := range m {
		if strings.EqualFold(k, key) {
			member, found = e, true
			continue
		}
		if strict {
			return false, fmt.Errorf("%s%q", unknownFieldPrefix, k)
		}
	}
	if !found || member == nil {
		return false, nil
	}
	data, err := json.Marshal(member)
	if err != nil {
		return false, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return false, err
	}
	return true, nil
}

func convertToAgentRuntimeArtifact(v any, strict bool) (any, error) {
	var cc types.ContainerConfiguration
	ok, err := decodeUnionMember(v, "ContainerConfiguration", &cc, strict)
	if err != nil || !ok {
		return nil, err
	}
	return &types.AgentRuntimeArtifactMemberContainerConfiguration{Value: cc}, nil
}

func convertToAuthorizerConfiguration(v any, strict bool) (any, error) {
	var jwt types.CustomJWTAuthorizerConfiguration
	ok, err := decodeUnionMember(v, "CustomJWTAuthorizer", &jwt, strict)
	if err != nil || !ok {
		return nil, err
	}
	return &types.AuthorizerConfigurationMemberCustomJWTAuthorizer{Value: jwt}, nil
}

func convertToRequestHeaderConfiguration(v any, strict bool) (any, error) {
	var allowlist []string
	ok, err := decodeUnionMember(v, "RequestHeaderAllowlist", &allowlist, strict)
	if err != nil || !ok {
		return nil, err
	}
	return &types.RequestHeaderConfigurationMemberRequestHeaderAllowlist{Value: allowlist}, nil
}

func convertToGatewayProtocolConfiguration(v any, strict bool) (any, error) {
	var mcp types.MCPGatewayConfiguration
	ok, err := decodeUnionMember(v, "Mcp", &mcp, strict)
	if err != nil || !ok {
		return nil, err
	}
	return &types.GatewayProtocolConfigurationMemberMcp{Value: mcp}, nil
}

// responseToMap converts an SDK output into a nested map keyed by SDK
// field names. Union members become {Member: value}.
func responseToMap(out any) (map[string]any, error) {
	v, err := toJSONValue(out)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	delete(m, "ResultMetadata")
	rv := reflect.Indirect(reflect.ValueOf(out))
	if rv.Kind() == reflect.Struct {
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			if !f.IsExported() || f.Type.Kind() != reflect.Interface {
				continue
			}
			fv := rv.Field(i)
			if fv.IsNil() {
				continue
			}
			u, err := convertFromUnion(fv.Interface())
			if err != nil {
				return nil, err
			}
			m[f.Name] = u
		}
	}
	return pruneNulls(m).(map[string]any), nil
}

func convertFromUnion(v any) (any, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return toJSONValue(v)
	}
	_, member, ok := strings.Cut(rv.Type().Name(), "Member")
	value := rv.FieldByName("Value")
	if !ok || member == "" || !value.IsValid() {
		return toJSONValue(v)
	}
	plain, err := toJSONValue(value.Interface())
	if err != nil {
		return nil, err
	}
	return map[string]any{member: pruneNulls(plain)}, nil
}

func bindInvokeAgentRuntime(client BedrockAgentCoreClient) binding {
	return func(ctx context.Context, op *OperationDescriptor, request map[string]any) (map[string]any, error) {
		payload, err := payloadBytes(request["Payload"])
		if err != nil {
			return nil, &FieldError{Kind: ErrInvalidValue, Path: "Payload", Detail: err.Error()}
		}
		rest := make(map[string]any, len(request))
		for k, v := range request {
			if k != "Payload" {
				rest[k] = v
			}
		}
		in, err := decodeInput[bedrockagentcore.InvokeAgentRuntimeInput](ctx, op, rest, nil)
		if err != nil {
			return nil, err
		}
		in.Payload = payload
		if in.ContentType == nil {
			if json.Valid(payload) {
				in.ContentType = aws.String("application/json")
			} else {
				in.ContentType = aws.String("text/plain")
			}
		}
		if in.Accept == nil {
			in.Accept = aws.String("application/json")
		}
		out, err := client.InvokeAgentRuntime(ctx, in)
		if err != nil {
			return nil, err
		}
		body := out.Response
		out.Response = nil
		m, err := responseToMap(out)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return m, nil
		}
		defer body.Close()
		bs, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		var decoded any
		if json.Valid(bs) && json.Unmarshal(bs, &decoded) == nil {
			m["Response"] = decoded
		} else {
			m["Response"] = string(bs)
		}
		slog.DebugContext(ctx, "agent runtime responded",
			"status_code", aws.ToInt32(out.StatusCode),
			"content_type", aws.ToString(out.ContentType),
		)
		return m, nil
	}
}

func payloadBytes(v any) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}
