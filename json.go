package acctl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// jsonHook rewrites one key/value pair while a decoded JSON document is
// walked. Returning a nil value removes the key.
type jsonHook func(path, key string, value any) (string, any, error)

type marshalJSONOptions struct {
	hooks                 []jsonHook
	ignoreLowerCamelPaths []string
	indent                string
}

// marshalJSON encodes v with lowerCamel keys, the form used for output and
// rendered files.
func marshalJSON(v any, optFns ...func(*marshalJSONOptions)) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	var opts marshalJSONOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fn := chainHooks(opts.ignoreLowerCamelPaths, toLowerCamelCase, opts.hooks)
	switch b[0] {
	case '{':
		m := map[string]any{}
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, err
		}
		if err := walkMap(m, "$", fn); err != nil {
			return nil, err
		}
		b, err = json.Marshal(m)
	case '[':
		a := []any{}
		if err := json.Unmarshal(b, &a); err != nil {
			return nil, err
		}
		if err := walkArray(a, "$", fn); err != nil {
			return nil, err
		}
		b, err = json.Marshal(a)
	}
	if err != nil || opts.indent == "" {
		return b, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", opts.indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type unmarshalJSONOptions struct {
	hooks                 []jsonHook
	ignoreUpperCamelPaths []string
	strict                bool
}

// unmarshalJSON decodes data into v after raising keys to UpperCamel, the
// field names of the SDK types.
func unmarshalJSON(data []byte, v any, optFns ...func(*unmarshalJSONOptions)) error {
	if v == nil {
		return nil
	}
	var opts unmarshalJSONOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fn := chainHooks(opts.ignoreUpperCamelPaths, toUpperCamelCase, opts.hooks)
	switch raw := raw.(type) {
	case map[string]any:
		if err := walkMap(raw, "$", fn); err != nil {
			return err
		}
	case []any:
		if err := walkArray(raw, "$", fn); err != nil {
			return err
		}
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if opts.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}

func chainHooks(ignorePaths []string, convert jsonHook, hooks []jsonHook) jsonHook {
	return func(path, key string, value any) (string, any, error) {
		var err error
		newKey, newValue := key, value
		if !matchAnyJSONKey(path, ignorePaths) {
			newKey, newValue, err = convert(path, key, value)
			if err != nil {
				return "", nil, err
			}
		}
		for _, hook := range hooks {
			newKey, newValue, err = hook(path, newKey, newValue)
			if err != nil {
				return "", nil, err
			}
		}
		return newKey, newValue, nil
	}
}

func toLowerCamelCase(_, s string, v any) (string, any, error) {
	if len(s) == 0 {
		return s, v, nil
	}
	return strings.ToLower(s[:1]) + s[1:], v, nil
}

func toUpperCamelCase(_, s string, v any) (string, any, error) {
	if len(s) == 0 {
		return s, v, nil
	}
	return strings.ToUpper(s[:1]) + s[1:], v, nil
}

// walkMap applies fn to every key below m. Children are walked with their
// original value, so a hook may replace a subtree without it being rewritten.
func walkMap(m map[string]any, path string, fn jsonHook) error {
	for key, value := range m {
		delete(m, key)
		newKey := key
		newValue := value
		currentPath := path + "." + key
		if fn != nil {
			var err error
			newKey, newValue, err = fn(currentPath, newKey, newValue)
			if err != nil {
				return err
			}
		}
		if newValue == nil {
			continue
		}
		m[newKey] = newValue
		switch value := value.(type) {
		case map[string]any:
			if err := walkMap(value, currentPath, fn); err != nil {
				return err
			}
		case []any:
			if err := walkArray(value, currentPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkArray(a []any, path string, fn jsonHook) error {
	for i, value := range a {
		currentPath := path + "." + strconv.Itoa(i)
		switch value := value.(type) {
		case map[string]any:
			if err := walkMap(value, currentPath, fn); err != nil {
				return err
			}
		case []any:
			if err := walkArray(value, currentPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// matchJSONKey compares a walked path with a pattern case-insensitively.
// "*" matches any single element.
func matchJSONKey(path, pattern string) bool {
	pathParts := strings.Split(strings.ToLower(path), ".")
	patternParts := strings.Split(strings.ToLower(pattern), ".")
	if len(pathParts) != len(patternParts) {
		return false
	}
	for i := range pathParts {
		if patternParts[i] == "*" {
			continue
		}
		if pathParts[i] != patternParts[i] {
			return false
		}
	}
	return true
}

func matchAnyJSONKey(path string, patterns []string) bool {
	for _, p := range patterns {
		if matchJSONKey(path, p) {
			return true
		}
	}
	return false
}

// mapKeyPaths returns walk patterns for the keys below each map field.
func mapKeyPaths(fields []string) []string {
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		paths = append(paths, "$."+f+".*")
	}
	return paths
}

const unknownFieldPrefix = "json: unknown field "

func extractUnknownFieldKey(err error) string {
	if err == nil {
		return ""
	}
	unwrapped := errors.Unwrap(err)
	if unwrapped == nil {
		unwrapped = err
	}
	if strings.HasPrefix(unwrapped.Error(), unknownFieldPrefix) {
		return strings.Trim(
			strings.TrimPrefix(unwrapped.Error(), unknownFieldPrefix),
			`"`,
		)
	}
	return ""
}

// toJSONValue converts v to the generic form encoding/json decodes into.
func toJSONValue(v any) (any, error) {
	bs, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(bs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// pruneNulls drops null members of objects, recursively.
func pruneNulls(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			if e == nil {
				delete(v, k)
				continue
			}
			v[k] = pruneNulls(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = pruneNulls(e)
		}
		return v
	}
	return v
}

// lookupPath follows a dotted path through nested objects. Exact keys win
// over case-insensitive matches.
func lookupPath(v any, path string) (any, bool) {
	cur := v
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := m[key]
		if !ok {
			found := false
			for k, e := range m {
				if strings.EqualFold(k, key) {
					next, found = e, true
					break
				}
			}
			if !found {
				return nil, false
			}
		}
		cur = next
	}
	return cur, true
}
