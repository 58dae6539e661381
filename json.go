package symbolicmath

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON encodes n as a JSON object with a "type" discriminator:
//
//	{"type":"num","value":"2.5"}
//	{"type":"var","name":"x"}
//	{"type":"unary","op":"sin","arg":{...}}
//	{"type":"binary","op":"add","left":{...},"right":{...}}
//
// Number values are strings so that NaN and ±Inf survive the round trip.
// Pattern nodes cannot be encoded.
func ToJSON(n Node) (string, error) {
	m, err := toJSON(n)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func toJSON(n Node) (map[string]interface{}, error) {
	switch v := n.(type) {
	case *Number:
		return map[string]interface{}{"type": v.nodeType(), "value": formatFloat(v.value)}, nil
	case *Variable:
		return map[string]interface{}{"type": v.nodeType(), "name": v.name}, nil
	case *Unary:
		arg, err := toJSON(v.arg)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": v.nodeType(), "op": v.op.String(), "arg": arg}, nil
	case *Binary:
		l, err := toJSON(v.left)
		if err != nil {
			return nil, err
		}
		r, err := toJSON(v.right)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"type": v.nodeType(), "op": v.op.String(), "left": l, "right": r}, nil
	}
	return nil, fmt.Errorf("%s nodes cannot be serialized", n.nodeType())
}

// FromJSON decodes an expression object produced by ToJSON (after a
// generic json.Unmarshal into map[string]interface{}). A num value may
// also be a plain JSON number.
func FromJSON(data map[string]interface{}) (Node, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subObj := func(field string) (Node, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		n, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return n, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	switch typ {
	case "num":
		switch val := data["value"].(type) {
		case float64:
			return Num(val), nil
		case string:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid num value: %s", val)
			}
			return Num(f), nil
		case nil:
			return nil, fmt.Errorf("num: missing 'value'")
		}
		return nil, fmt.Errorf("num: 'value' must be a number or numeric string")

	case "var":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		return Var(name), nil

	case "unary":
		name, err := subString("op")
		if err != nil {
			return nil, err
		}
		op, ok := parseUnaryOp(name)
		if !ok {
			return nil, fmt.Errorf("unary: %w: %s", ErrUnsupportedOperator, name)
		}
		arg, err := subObj("arg")
		if err != nil {
			return nil, err
		}
		return UnaryOf(op, arg), nil

	case "binary":
		name, err := subString("op")
		if err != nil {
			return nil, err
		}
		op, ok := parseBinaryOp(name)
		if !ok {
			return nil, fmt.Errorf("binary: %w: %s", ErrUnsupportedOperator, name)
		}
		l, err := subObj("left")
		if err != nil {
			return nil, err
		}
		r, err := subObj("right")
		if err != nil {
			return nil, err
		}
		return BinaryOf(op, l, r), nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

func parseUnaryOp(name string) (UnaryOp, bool) {
	for op, s := range unaryNames {
		if s == name {
			return UnaryOp(op), true
		}
	}
	return 0, false
}

func parseBinaryOp(name string) (BinaryOp, bool) {
	for op, s := range binaryNames {
		if s == name {
			return BinaryOp(op), true
		}
	}
	return 0, false
}
