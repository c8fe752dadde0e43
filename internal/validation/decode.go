package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// decoder turns a raw JSON payload into typed input structs one field at a
// time, so a wrongly typed field is reported against its own path.
type decoder struct {
	errs []FieldError
}

func (d *decoder) fail(path, msg string) {
	if path == "" {
		path = "body"
	}
	d.errs = append(d.errs, FieldError{Field: path, Message: msg})
}

// rejected reports whether path, or one of its parents, already failed.
func (d *decoder) rejected(path string) bool {
	for _, e := range d.errs {
		if e.Field == path || strings.HasPrefix(path, e.Field+".") || strings.HasPrefix(path, e.Field+"[") {
			return true
		}
	}
	return false
}

func (d *decoder) result() error {
	if len(d.errs) == 0 {
		return nil
	}
	return &Error{Fields: d.errs}
}

func (d *decoder) root(payload []byte) map[string]json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		d.fail("body", "Malformed JSON payload")
		return nil
	}
	return d.object("", trimmed)
}

func (d *decoder) object(path string, raw json.RawMessage) map[string]json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		d.fail(path, "Expected object, received "+kindOf(raw))
		return nil
	}
	return obj
}

// nested decodes obj[key] as an object; absent or null yields nil.
func (d *decoder) nested(obj map[string]json.RawMessage, path, key string) map[string]json.RawMessage {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	return d.object(join(path, key), raw)
}

// array decodes obj[key] as a JSON array; absent or null yields nil.
func (d *decoder) array(obj map[string]json.RawMessage, path, key string) []json.RawMessage {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(join(path, key), "Expected array, received "+kindOf(raw))
		return nil
	}
	if out == nil {
		out = []json.RawMessage{}
	}
	return out
}

// value decodes obj[key] into T; absent or null yields nil.
func value[T any](d *decoder, obj map[string]json.RawMessage, path, key string) *T {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		d.fail(join(path, key), fmt.Sprintf("Expected %s, received %s", kindName(v), kindOf(raw)))
		return nil
	}
	return &v
}

func str(d *decoder, obj map[string]json.RawMessage, path, key string) *string {
	return value[string](d, obj, path, key)
}

func num(d *decoder, obj map[string]json.RawMessage, path, key string) *float64 {
	return value[float64](d, obj, path, key)
}

func boolean(d *decoder, obj map[string]json.RawMessage, path, key string) *bool {
	return value[bool](d, obj, path, key)
}

func stringList(d *decoder, obj map[string]json.RawMessage, path, key string) []string {
	items := d.array(obj, path, key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for i, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
			d.fail(fmt.Sprintf("%s[%d]", join(path, key), i), "Expected string, received "+kindOf(raw))
			s = ""
		}
		out = append(out, s)
	}
	return out
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func kindOf(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return "undefined"
	}
	switch t[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func kindName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
