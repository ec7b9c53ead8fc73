// Copyright (c) 2025, Easel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// String returns the string representation of the given enum
// value with the given map, falling back on the formatted int64
// value if it is not in the map.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// BitFlagString returns the string representation of the given bit
// flag value with the given values available, with flags separated
// by pipes (|).
func BitFlagString[T BitFlag](i T, values []T) string {
	var sb strings.Builder
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if sb.Len() > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(ies)
		}
	}
	return sb.String()
}

// SetString sets the given enum value from its string representation
// using the given map, and returns an error with the given type name
// if the string is invalid.
func SetString[T Enum](i EnumSetter, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		i.SetInt64(val.Int64())
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is equivalent to [SetString], but it also tries
// the lowercase version of the given string.
func SetStringLower[T Enum](i EnumSetter, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		i.SetInt64(val.Int64())
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		i.SetInt64(val.Int64())
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringOr sets the given flag value from its string representation
// while preserving any flags already set, with flags separated by pipes (|).
func SetStringOr[T BitFlag](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// SetStringOrLower is equivalent to [SetStringOr], but it also tries
// the lowercase version of each flag string.
func SetStringOrLower[T BitFlag](i BitFlagSetter, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if val, ok := valueMap[flag]; ok {
			i.SetFlag(true, val)
		} else if val, ok := valueMap[strings.ToLower(flag)]; ok {
			i.SetFlag(true, val)
		} else {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
	}
	return nil
}

// Desc returns the description of the given enum value with the
// given map, falling back on its string representation if it is
// not in the map.
func Desc[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// Values returns an [][Enum] slice of the given concrete enum values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// HasFlag returns whether the given flags have the given flag set.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in the given flags to
// the given value.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint32(v.Int64())
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
	} else {
		in &^= mask
	}
	atomic.StoreInt64(i, in)
}

// UnmarshalText loads the enum from the given text using
// [EnumSetter.SetString], with the given type name for error messages.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
	}
	return nil
}

// MarshalJSON marshals the enum as a JSON string.
func MarshalJSON(i Enum) ([]byte, error) {
	return strconv.AppendQuote(nil, i.String()), nil
}

// UnmarshalJSON loads the enum from the given JSON string using
// [EnumSetter.SetString], with the given type name for error messages.
func UnmarshalJSON(i EnumSetter, data []byte, typeName string) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%s.UnmarshalJSON: %w", typeName, err)
	}
	if err := i.SetString(s); err != nil {
		return fmt.Errorf("%s.UnmarshalJSON: %w", typeName, err)
	}
	return nil
}

// MarshalYAML marshals the enum as a YAML string.
func MarshalYAML(i Enum) (any, error) {
	return i.String(), nil
}

// UnmarshalYAML loads the enum from the given YAML node using
// [EnumSetter.SetString], with the given type name for error messages.
func UnmarshalYAML(i EnumSetter, n *yaml.Node, typeName string) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("%s.UnmarshalYAML: %w", typeName, err)
	}
	if err := i.SetString(s); err != nil {
		return fmt.Errorf("%s.UnmarshalYAML: %w", typeName, err)
	}
	return nil
}
