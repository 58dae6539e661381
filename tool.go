package symbolicmath

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Bounds on integer tool parameters. Sorting only happens in stages 0, 2
// and 4, so deeper schedules only repeat folding and rewriting.
const (
	MaxToolLevel       = 8
	MaxToolDerivatives = 16
)

// HandleToolCall dispatches a tool request. Expressions travel in the
// ToJSON object form; failures are reported in ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Node, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	// getInt returns def when key is absent. Present values must be
	// integers in [lo, hi].
	getInt := func(key string, def, lo, hi int) (int, error) {
		v, ok := req.Params[key]
		if !ok {
			return def, nil
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("param %s must be an integer", key)
		}
		if f < float64(lo) || f > float64(hi) {
			return 0, fmt.Errorf("param %s must be between %d and %d", key, lo, hi)
		}
		return int(f), nil
	}
	getBindings := func(key string) (map[string]float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be an object", key)
		}
		out := make(map[string]float64, len(raw))
		for name, x := range raw {
			f, ok := x.(float64)
			if !ok {
				return nil, fmt.Errorf("param %s.%s must be a number", key, name)
			}
			out[name] = f
		}
		return out, nil
	}
	respond := func(n Node) ToolResponse {
		m, err := toJSON(n)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: m, LaTeX: LaTeX(n), String: String(n)}
	}

	switch req.Tool {
	case "simplify":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		level, err := getInt("level", 1, 0, MaxToolLevel)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(SimplifyLevel(e, level))

	case "eval":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(Eval(e))

	case "derive", "diff":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getString("var")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		if req.Tool == "derive" {
			return respond(Derive(e, v))
		}
		return respond(Diff(e, v))

	case "diffn":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := getString("var")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		k, err := getInt("n", 1, 0, MaxToolDerivatives)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return respond(DiffN(e, v, k))

	case "substitute":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		b, err := getBindings("bindings")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		x, err := Substitute(e, b)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		// NaN and ±Inf are not valid JSON numbers.
		return ToolResponse{Result: formatFloat(x), String: formatFloat(x)}

	case "sort":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		name := HashHigh.String()
		if _, ok := req.Params["level"]; ok {
			if name, err = getString("level"); err != nil {
				return ToolResponse{Error: err.Error()}
			}
		}
		level, ok := parseHashLevel(name)
		if !ok {
			return ToolResponse{Error: fmt.Sprintf("unknown hash level: %s", name)}
		}
		return respond(Sort(e, level))

	case "to_latex":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: LaTeX(e), LaTeX: LaTeX(e), String: String(e)}

	case "free_symbols":
		e, err := getExpr("expr")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		syms := FreeSymbols(e)
		return ToolResponse{Result: syms, String: fmt.Sprint(syms)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

func parseHashLevel(name string) (HashLevel, bool) {
	for _, l := range []HashLevel{HashHigh, HashMedium, HashLow} {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("simplify", "Staged simplification. Optional: level (integer stages 0-8, default 1)", []string{"expr"}, map[string]string{"expr": "object", "level": "integer"}),
		ts("eval", "Fold constant subtrees and operator identities", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("derive", "Unsimplified derivative d/dvar", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string"}),
		ts("diff", "Simplified derivative d/dvar", []string{"expr", "var"}, map[string]string{"expr": "object", "var": "string"}),
		ts("diffn", "nth derivative. Requires n (int, 0-16)", []string{"expr", "var", "n"}, map[string]string{"expr": "object", "var": "string", "n": "integer"}),
		ts("substitute", "Evaluate numerically. bindings maps variable names to numbers", []string{"expr", "bindings"}, map[string]string{"expr": "object", "bindings": "object"}),
		ts("sort", "Regroup associative chains. Optional: level (high, medium, low)", []string{"expr"}, map[string]string{"expr": "object", "level": "string"}),
		ts("to_latex", "Convert to LaTeX", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("free_symbols", "Return free symbol names", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
