package codec

import (
	"time"

	"github.com/zclconf/go-cty/cty"
)

// Variable type names understood by the codec.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeShort   = "short"
	TypeLong    = "long"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeBinary  = "binary"
)

// DateLayout is the wire format of date variables.
const DateLayout = time.RFC3339

// ctyTypes maps primitive type names to the cty type their JSON value is
// unmarshaled against. Dates travel as strings.
var ctyTypes = map[string]cty.Type{
	TypeString:  cty.String,
	TypeInteger: cty.Number,
	TypeShort:   cty.Number,
	TypeLong:    cty.Number,
	TypeDouble:  cty.Number,
	TypeBoolean: cty.Bool,
	TypeDate:    cty.String,
}

// typeOf infers the type name of a native value. Composite and nil values are
// untyped.
func typeOf(v any) string {
	switch v.(type) {
	case string:
		return TypeString
	case int, int32:
		return TypeInteger
	case int16:
		return TypeShort
	case int64:
		return TypeLong
	case float32, float64:
		return TypeDouble
	case bool:
		return TypeBoolean
	case time.Time:
		return TypeDate
	case []byte:
		return TypeBinary
	default:
		return ""
	}
}
