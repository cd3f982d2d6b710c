package rules

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource rewrites rule source for zygomys:
//
//  1. ; line comments become // comments.
//  2. kebab-case identifiers become underscore form (cga-print -> cga_print),
//     since zygomys reads a hyphen as the subtraction operator.
//
// String literals are copied through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + 8)
	b := []byte(source)

	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == '"':
			out.WriteByte(c)
			for i++; i < len(b) && b[i] != '"'; i++ {
				if b[i] == '\\' && i+1 < len(b) {
					out.WriteByte(b[i])
					i++
				}
				out.WriteByte(b[i])
			}
			if i < len(b) {
				out.WriteByte(b[i])
			}
		case c == ';':
			out.WriteString("//")
			for i+1 < len(b) && b[i+1] == ';' {
				i++
			}
			for i+1 < len(b) && b[i+1] != '\n' {
				i++
				out.WriteByte(b[i])
			}
		case c == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out.WriteByte('_')
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Value conversion
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toValue converts a Sexp into the Go value stored in reports and
// attribute maps.
func toValue(s zygo.Sexp) any {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val
	case *zygo.SexpFloat:
		return v.Val
	case *zygo.SexpStr:
		return v.S
	case *zygo.SexpBool:
		return v.Val
	}
	return s.SexpString(nil)
}

// fromValue converts a shape attribute into a Sexp.
func fromValue(v any) (zygo.Sexp, error) {
	switch x := v.(type) {
	case float64:
		return &zygo.SexpFloat{Val: x}, nil
	case float32:
		return &zygo.SexpFloat{Val: float64(x)}, nil
	case int:
		return &zygo.SexpInt{Val: int64(x)}, nil
	case int32:
		return &zygo.SexpInt{Val: int64(x)}, nil
	case int64:
		return &zygo.SexpInt{Val: x}, nil
	case uint32:
		return &zygo.SexpInt{Val: int64(x)}, nil
	case string:
		return &zygo.SexpStr{S: x}, nil
	case bool:
		return &zygo.SexpBool{Val: x}, nil
	}
	return zygo.SexpNull, fmt.Errorf("unsupported attribute type %T", v)
}

// threeFloats parses exactly three numeric arguments.
func threeFloats(builtin string, args []zygo.Sexp) (x, y, z float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("%s requires exactly 3 arguments, got %d", builtin, len(args))
	}
	var v [3]float64
	for i, a := range args {
		if v[i], err = toFloat64(a); err != nil {
			return 0, 0, 0, fmt.Errorf("%s: argument %d: %w", builtin, i+1, err)
		}
	}
	return v[0], v[1], v[2], nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the rule builtins into a zygomys environment.
// The builtins record their effects on p.
func registerBuiltins(env *zygo.Zlisp, p *Program, attrs map[string]any) {

	// (attr "height" 10)
	env.AddFunction("attr", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 || len(args) > 2 {
			return zygo.SexpNull, fmt.Errorf("attr requires a name and an optional default")
		}
		key, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("attr: name: %w", err)
		}
		if v, ok := attrs[key]; ok {
			s, err := fromValue(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("attr %q: %w", key, err)
			}
			p.Attributes[key] = toValue(s)
			return s, nil
		}
		if len(args) == 2 {
			p.Attributes[key] = toValue(args[1])
			return args[1], nil
		}
		return zygo.SexpNull, fmt.Errorf("attr: no attribute named %q and no default", key)
	})

	// (extrude 12.5)
	env.AddFunction("extrude", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("extrude requires exactly 1 argument, got %d", len(args))
		}
		h, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("extrude: height: %w", err)
		}
		if h <= 0 {
			return zygo.SexpNull, fmt.Errorf("extrude: height must be positive, got %g", h)
		}
		p.Ops = append(p.Ops, Op{Kind: OpExtrude, Z: h})
		return zygo.SexpNull, nil
	})

	// (box 2 2 3)
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		x, y, z, err := threeFloats("box", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		if x <= 0 || y <= 0 || z <= 0 {
			return zygo.SexpNull, fmt.Errorf("box: dimensions must be positive, got %g %g %g", x, y, z)
		}
		p.Ops = append(p.Ops, Op{Kind: OpBox, X: x, Y: y, Z: z})
		return zygo.SexpNull, nil
	})

	// (translate 0 0 5)
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		x, y, z, err := threeFloats("translate", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		p.Ops = append(p.Ops, Op{Kind: OpTranslate, X: x, Y: y, Z: z})
		return zygo.SexpNull, nil
	})

	// (report "floors" 4)
	env.AddFunction("report", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("report requires a key and a value")
		}
		key, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("report: key: %w", err)
		}
		p.Report[key] = toValue(args[1])
		return zygo.SexpNull, nil
	})

	// (cga-print "height is" h)
	env.AddFunction("cga_print", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = fmt.Sprint(toValue(a))
		}
		p.Prints = append(p.Prints, strings.Join(parts, " "))
		return zygo.SexpNull, nil
	})

	// (cga-error "footprint too small")
	env.AddFunction("cga_error", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("cga-error requires exactly 1 argument, got %d", len(args))
		}
		msg, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cga-error: %w", err)
		}
		p.Errors = append(p.Errors, msg)
		return zygo.SexpNull, nil
	})
}
