// Package filter builds message predicates for tail runs.
package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/ext"

	"github.com/cxm940188/kafka-ui/internal/emitter"
)

// Contains matches messages whose key, value or any header value contains s.
// An empty s matches everything.
func Contains(s string) emitter.Predicate {
	if s == "" {
		return emitter.MatchAll
	}
	return func(m *emitter.Message) (bool, error) {
		if m.Key != nil && strings.Contains(*m.Key, s) {
			return true, nil
		}
		if m.Value != nil && strings.Contains(*m.Value, s) {
			return true, nil
		}
		for _, v := range m.Headers {
			if strings.Contains(v, s) {
				return true, nil
			}
		}
		return false, nil
	}
}

// All matches when every predicate matches. The first error wins.
func All(preds ...emitter.Predicate) emitter.Predicate {
	var ps []emitter.Predicate
	for _, p := range preds {
		if p != nil {
			ps = append(ps, p)
		}
	}
	switch len(ps) {
	case 0:
		return emitter.MatchAll
	case 1:
		return ps[0]
	}
	return func(m *emitter.Message) (bool, error) {
		for _, p := range ps {
			ok, err := p(m)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

var celVars = []string{"key", "value", "valueAsJson", "headers", "partition", "offset", "timestampMs"}

// CEL compiles a boolean expression evaluated against each message, e.g.
//
//	partition == 0 && valueAsJson.status == "FAILED"
//
// valueAsJson is null when the value is not JSON.
func CEL(expr string) (emitter.Predicate, error) {
	env, err := cel.NewEnv(
		cel.Variable("key", cel.StringType),
		cel.Variable("value", cel.StringType),
		cel.Variable("valueAsJson", cel.DynType),
		cel.Variable("headers", cel.MapType(cel.StringType, cel.StringType)),
		cel.Variable("partition", cel.IntType),
		cel.Variable("offset", cel.IntType),
		cel.Variable("timestampMs", cel.IntType),
		ext.Strings(),
		ext.Encoders(),
		ext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("cel compile: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) && !ast.OutputType().IsExactType(types.DynType) {
		return nil, fmt.Errorf("cel compile: expression must be boolean, got %s", ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("cel program: %w", err)
	}

	return func(m *emitter.Message) (bool, error) {
		out, _, err := prg.Eval(activation(m))
		if err != nil {
			return false, fmt.Errorf("cel eval: %w", err)
		}
		b, ok := out.Value().(bool)
		if !ok {
			return false, fmt.Errorf("cel eval: expression returned %s, not bool", out.Type())
		}
		return b, nil
	}, nil
}

func activation(m *emitter.Message) map[string]any {
	vars := make(map[string]any, len(celVars))
	vars["key"] = deref(m.Key)
	vars["value"] = deref(m.Value)
	vars["valueAsJson"] = nil
	if m.Value != nil {
		var v any
		if json.Unmarshal([]byte(*m.Value), &v) == nil {
			vars["valueAsJson"] = v
		}
	}
	headers := m.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	vars["headers"] = headers
	vars["partition"] = int64(m.Partition)
	vars["offset"] = m.Offset
	vars["timestampMs"] = m.Timestamp.UnixMilli()
	return vars
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
