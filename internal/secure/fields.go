package secure

import (
	"github.com/sirupsen/logrus"
)

// FieldFailure records a field that could not be decrypted.
type FieldFailure struct {
	Field string
	Err   error
}

// EncryptFields returns a copy of record with the named non-empty string
// fields sealed. Other fields are copied as they are.
func (c *Cipher) EncryptFields(record map[string]any, fields []string) (map[string]any, error) {
	out := clone(record)
	for _, f := range fields {
		s, ok := out[f].(string)
		if !ok || s == "" {
			continue
		}
		sealed, err := c.Encrypt(s)
		if err != nil {
			return nil, err
		}
		out[f] = sealed
	}
	return out, nil
}

// DecryptFields returns a copy of record with the named fields opened. A
// field that fails to open keeps its stored value and is reported.
func (c *Cipher) DecryptFields(record map[string]any, fields []string) (map[string]any, []FieldFailure) {
	out := clone(record)
	var failures []FieldFailure
	for _, f := range fields {
		s, ok := out[f].(string)
		if !ok || s == "" {
			continue
		}
		plain, err := c.Decrypt(s)
		if err != nil {
			logrus.WithError(err).WithField("field", f).Warn("decrypt field")
			failures = append(failures, FieldFailure{Field: f, Err: err})
			continue
		}
		out[f] = plain
	}
	return out, failures
}

func EncryptFields(record map[string]any, fields []string, key string) (map[string]any, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	return c.EncryptFields(record, fields)
}

func DecryptFields(record map[string]any, fields []string, key string) (map[string]any, []FieldFailure, error) {
	c, err := New(key)
	if err != nil {
		return nil, nil, err
	}
	out, failures := c.DecryptFields(record, fields)
	return out, failures, nil
}

func clone(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
