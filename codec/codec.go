package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/hupe1980/procvars/core"
)

var (
	errBinaryInline    = errors.New("binary variables must be uploaded as raw data")
	errUnsupportedType = errors.New("unsupported variable type")
	errEmptyPayload    = errors.New("empty payload")
)

var jsonNull = json.RawMessage("null")

// RestVariable is the wire representation of a variable.
type RestVariable struct {
	Name     string          `json:"name"`
	Type     string          `json:"type,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
	Scope    string          `json:"scope,omitempty"`
	ValueURL string          `json:"valueUrl,omitempty"`
}

// ValueURLFunc builds the URL under which a binary variable's data can be
// fetched. Binary values are never inlined.
type ValueURLFunc func(executionID, name string) string

// DefaultValueURL returns a relative path for the binary data of a variable.
func DefaultValueURL(executionID, name string) string {
	return fmt.Sprintf("runtime/executions/%s/variables/%s/data", url.PathEscape(executionID), url.PathEscape(name))
}

// DecodeJSON parses a request body holding either a JSON array of variables
// or a single variable object.
func DecodeJSON(data []byte) ([]RestVariable, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Err: errEmptyPayload}
	}
	if trimmed[0] == '[' {
		var rvs []RestVariable
		if err := json.Unmarshal(trimmed, &rvs); err != nil {
			return nil, &DecodeError{Err: err}
		}
		return rvs, nil
	}
	var rv RestVariable
	if err := json.Unmarshal(trimmed, &rv); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return []RestVariable{rv}, nil
}

// Decode converts a wire variable into a batch entry.
func Decode(rv RestVariable) (core.VariableEntry, error) {
	if rv.Name == "" {
		return core.VariableEntry{}, core.NewInvalidArgumentError("name is required")
	}
	sc, err := core.ParseScope(strings.ToLower(rv.Scope))
	if err != nil {
		return core.VariableEntry{}, err
	}
	value, err := DecodeValue(rv.Type, rv.Value)
	if err != nil {
		return core.VariableEntry{}, &DecodeError{Name: rv.Name, Type: rv.Type, Err: err}
	}
	return core.VariableEntry{Name: rv.Name, Scope: sc, Value: value, Type: rv.Type}, nil
}

// DecodeBatch decodes every wire variable, stopping at the first failure.
func DecodeBatch(rvs []RestVariable) ([]core.VariableEntry, error) {
	entries := make([]core.VariableEntry, 0, len(rvs))
	for _, rv := range rvs {
		e, err := Decode(rv)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// DecodeValue converts a raw JSON value into a native value according to the
// type name. An empty type name decodes by the implied JSON type.
func DecodeValue(typ string, raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	if typ == "" {
		ty, err := ctyjson.ImpliedType(raw)
		if err != nil {
			return nil, err
		}
		val, err := ctyjson.Unmarshal(raw, ty)
		if err != nil {
			return nil, err
		}
		return ctyToNative(val)
	}

	if typ == TypeBinary {
		return nil, errBinaryInline
	}
	ty, ok := ctyTypes[typ]
	if !ok {
		return nil, errUnsupportedType
	}
	val, err := ctyjson.Unmarshal(raw, ty)
	if err != nil {
		return nil, err
	}
	return fromPrimitive(typ, val)
}

func fromPrimitive(typ string, val cty.Value) (any, error) {
	var (
		out any
		err error
	)
	switch typ {
	case TypeString:
		out = val.AsString()
	case TypeInteger:
		var i int32
		err = gocty.FromCtyValue(val, &i)
		out = i
	case TypeShort:
		var i int16
		err = gocty.FromCtyValue(val, &i)
		out = i
	case TypeLong:
		var i int64
		err = gocty.FromCtyValue(val, &i)
		out = i
	case TypeDouble:
		var f float64
		err = gocty.FromCtyValue(val, &f)
		out = f
	case TypeBoolean:
		var b bool
		err = gocty.FromCtyValue(val, &b)
		out = b
	case TypeDate:
		out, err = time.Parse(DateLayout, val.AsString())
	default:
		err = errUnsupportedType
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Encode converts a variable descriptor into its wire representation. When
// the descriptor carries no type, it is inferred from the value. Binary values
// are replaced by a ValueURL built with urlFn (DefaultValueURL if nil).
func Encode(v core.Variable, urlFn ValueURLFunc) (RestVariable, error) {
	typ := v.Type
	if typ == "" {
		typ = typeOf(v.Value)
	}
	rv := RestVariable{Name: v.Name, Type: typ, Scope: string(v.Scope)}

	if typ == TypeBinary {
		if urlFn == nil {
			urlFn = DefaultValueURL
		}
		rv.ValueURL = urlFn(v.ExecutionID, v.Name)
		return rv, nil
	}

	raw, err := EncodeValue(v.Value)
	if err != nil {
		return RestVariable{}, fmt.Errorf("encode variable '%s': %w", v.Name, err)
	}
	rv.Value = raw
	return rv, nil
}

// EncodeAll encodes descriptors preserving their order.
func EncodeAll(vars []core.Variable, urlFn ValueURLFunc) ([]RestVariable, error) {
	out := make([]RestVariable, 0, len(vars))
	for _, v := range vars {
		rv, err := Encode(v, urlFn)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, nil
}

// EncodeValue marshals a native value to JSON through its cty representation.
func EncodeValue(v any) (json.RawMessage, error) {
	if v == nil {
		return jsonNull, nil
	}
	val, err := nativeToCty(v)
	if err != nil {
		return nil, err
	}
	if val.IsNull() {
		return jsonNull, nil
	}
	return ctyjson.Marshal(val, val.Type())
}
