package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// FeatureList is the ordered feature list of a catalog service. It is stored
// in a single text column as a JSON array of strings.
type FeatureList []string

// CleanFeatures trims every entry and drops the blank ones, keeping order.
func CleanFeatures(in []string) FeatureList {
	out := make(FeatureList, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// EncodeFeatures serializes a feature list. A nil list encodes as "[]".
func EncodeFeatures(f []string) (string, error) {
	if f == nil {
		f = []string{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeFeatures is the inverse of EncodeFeatures.
func DecodeFeatures(s string) (FeatureList, error) {
	out := FeatureList{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFeatures, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: null list", ErrCorruptFeatures)
	}
	return out, nil
}

func (f FeatureList) Value() (driver.Value, error) {
	return EncodeFeatures(f)
}

func (f *FeatureList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return fmt.Errorf("%w: null column", ErrCorruptFeatures)
	default:
		return fmt.Errorf("%w: unexpected column type %T", ErrCorruptFeatures, value)
	}
	decoded, err := DecodeFeatures(raw)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}
