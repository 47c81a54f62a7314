package pb

import (
	"encoding/json"
	"sort"

	"github.com/golang/protobuf/proto"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/pkg/errors"
)

// ToStruct は、JSONに変換可能な値を protobuf の Struct に変換します。
func ToStruct(data interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, errors.Wrap(err, "value is not a JSON object")
	}
	return toStruct(fields)
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	result := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	for k, v := range fields {
		value, err := toValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", k)
		}
		result.Fields[k] = value
	}
	return result, nil
}

func toValue(v interface{}) (*structpb.Value, error) {
	switch v := v.(type) {
	case nil:
		return &structpb.Value{Kind: &structpb.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE}}, nil
	case bool:
		return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: v}}, nil
	case float64:
		return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: v}}, nil
	case string:
		return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: v}}, nil
	case []interface{}:
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(v))}
		for i, item := range v {
			value, err := toValue(item)
			if err != nil {
				return nil, errors.Wrapf(err, "item #%d", i)
			}
			list.Values[i] = value
		}
		return &structpb.Value{Kind: &structpb.Value_ListValue{ListValue: list}}, nil
	case map[string]interface{}:
		s, err := toStruct(v)
		if err != nil {
			return nil, err
		}
		return &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: s}}, nil
	}
	return nil, errors.Errorf("unsupported JSON value: %T", v)
}

// Marshal は、値を Struct としてバイト列に変換します。
func Marshal(data interface{}) ([]byte, error) {
	s, err := ToStruct(data)
	if err != nil {
		return nil, err
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// LoadBytes は、Marshal で出力したバイト列を読み込みます。
func LoadBytes(b []byte) (*structpb.Struct, error) {
	var loaded structpb.Struct
	if err := proto.Unmarshal(b, &loaded); err != nil {
		return nil, errors.WithStack(err)
	}
	return &loaded, nil
}

// Keys は、Struct のフィールド名をソートして返します。
func Keys(s *structpb.Struct) []string {
	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
