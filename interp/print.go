package interp

import (
	"fmt"
	"strings"
)

// Render renders a value the way nested contexts do (single-line Instance
// form).
func Render(v Value) string {
	return render(v, false)
}

// RenderTopLevel renders a value the way the `print` statement does at
// statement level: Instances print in their multi-line indented form,
// unlike the compact single-line form they take nested inside a list or
// another instance's fields.
func RenderTopLevel(v Value) string {
	return render(v, true)
}

func render(v Value, topLevel bool) string {
	switch x := v.(type) {
	case Nil:
		return "nil"
	case Number:
		return formatNumber(float64(x))
	case StrongNumber:
		return formatNumber(float64(x))
	case String:
		return string(x)
	case StrongString:
		return string(x)
	case Boolean:
		return formatBool(bool(x))
	case StrongBoolean:
		return formatBool(bool(x))
	case *Collection:
		parts := make([]string, len(x.Elements))
		for i, e := range x.Elements {
			parts[i] = render(e, false)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Instance:
		return renderInstance(x, topLevel)
	case *UserFunction:
		name := x.FnName
		if name == "" {
			name = "anonymous"
		}
		return fmt.Sprintf("<fn %s>", name)
	case *Builtin:
		return fmt.Sprintf("<native fn %s>", x.BuiltinName)
	case *Class:
		return fmt.Sprintf("<class %s>", x.Name)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderInstance(inst *Instance, topLevel bool) string {
	if !topLevel {
		parts := make([]string, len(inst.FieldOrder))
		for i, name := range inst.FieldOrder {
			parts[i] = fmt.Sprintf("%s = %s", name, render(inst.Fields[name], false))
		}
		return fmt.Sprintf("%s { %s }", inst.Class.Name, strings.Join(parts, ", "))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", inst.Class.Name)
	for _, name := range inst.FieldOrder {
		fmt.Fprintf(&b, "  %s = %s\n", name, render(inst.Fields[name], false))
	}
	b.WriteString("}")
	return b.String()
}

func formatNumber(f float64) string {
	return fmt.Sprintf("%v", f)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// DebugString renders the detailed, type-naming representation the `debug`
// builtin prints, distinct from the user-facing Render form: every value
// is tagged with its variant name, so Number(1) reads differently from
// StrongNumber(1) even though both print as "1" normally.
func DebugString(v Value) string {
	switch x := v.(type) {
	case Nil:
		return "Nil"
	case Number:
		return fmt.Sprintf("Number(%v)", float64(x))
	case StrongNumber:
		return fmt.Sprintf("StrongNumber(%v)", float64(x))
	case String:
		return fmt.Sprintf("String(%q)", string(x))
	case StrongString:
		return fmt.Sprintf("StrongString(%q)", string(x))
	case Boolean:
		return fmt.Sprintf("Boolean(%v)", bool(x))
	case StrongBoolean:
		return fmt.Sprintf("StrongBoolean(%v)", bool(x))
	case *Collection:
		parts := make([]string, len(x.Elements))
		for i, e := range x.Elements {
			parts[i] = DebugString(e)
		}
		return "Collection[" + strings.Join(parts, ", ") + "]"
	case *Instance:
		parts := make([]string, len(x.FieldOrder))
		for i, name := range x.FieldOrder {
			parts[i] = fmt.Sprintf("%s: %s", name, DebugString(x.Fields[name]))
		}
		return fmt.Sprintf("Instance(%s){%s}", x.Class.Name, strings.Join(parts, ", "))
	case *UserFunction:
		return fmt.Sprintf("Function(%s)", x.FnName)
	case *Builtin:
		return fmt.Sprintf("Builtin(%s)", x.BuiltinName)
	case *Class:
		return fmt.Sprintf("Class(%s)", x.Name)
	default:
		return fmt.Sprintf("%#v", v)
	}
}
