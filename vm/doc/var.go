package luadoc

import lua "github.com/yuin/gopher-lua"

// Var is a value exposed by a library, usually a constant
type Var struct {
	Name        string
	Description string
	Value       lua.LValue
	Type        string
}

// literal is how the value is written in the generated stub.
// Only numbers, booleans and strings are spelled out.
func (v *Var) literal() string {
	switch value := v.Value.(type) {
	case lua.LNumber, lua.LBool:
		return value.String()
	case lua.LString:
		return `"` + string(value) + `"`
	default:
		return "nil"
	}
}
