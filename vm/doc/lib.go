// Package luadoc describes Lua libraries implemented in Go.
// The same description is used to build the module table
// and to render EmmyLua annotations for editors.
package luadoc

import (
	"fmt"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
	"strings"
)

type Param struct {
	Name        string
	Description string
	Type        string
	Optional    bool
}

type Func struct {
	Name        string
	Description string
	Value       lua.LGFunction
	Params      []*Param
	Returns     []*Param
}

type Lib struct {
	Name        string
	Description string
	Funcs       []*Func
	Vars        []*Var
	Libs        []*Lib
}

// Table builds the module table, nested libraries included
func (l *Lib) Table(L *lua.LState) *lua.LTable {
	table := L.NewTable()

	for _, fn := range l.Funcs {
		table.RawSetString(fn.Name, L.NewFunction(fn.Value))
	}

	for _, v := range l.Vars {
		table.RawSetString(v.Name, v.Value)
	}

	for _, lib := range l.Libs {
		table.RawSetString(lib.Name, lib.Table(L))
	}

	return table
}

// Loader returns a function suitable for lua.LState.PreloadModule
func (l *Lib) Loader() lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(l.Table(L))
		return 1
	}
}

// LuaDoc renders the library as EmmyLua annotated stubs
func (l *Lib) LuaDoc() string {
	var sb strings.Builder

	sb.WriteString("---@meta\n\n")
	l.writeDoc(&sb, l.Name, true)
	sb.WriteString("return " + l.Name + "\n")

	return sb.String()
}

func (l *Lib) writeDoc(sb *strings.Builder, path string, root bool) {
	writeComment(sb, l.Description)
	sb.WriteString(fmt.Sprintf("---@class %s\n", path))

	if root {
		sb.WriteString(fmt.Sprintf("local %s = {}\n\n", path))
	} else {
		sb.WriteString(fmt.Sprintf("%s = {}\n\n", path))
	}

	for _, v := range l.Vars {
		writeComment(sb, v.Description)
		sb.WriteString(fmt.Sprintf("---@type %s\n", v.Type))
		sb.WriteString(fmt.Sprintf("%s.%s = %s\n\n", path, v.Name, v.literal()))
	}

	for _, fn := range l.Funcs {
		writeComment(sb, fn.Description)

		for _, param := range fn.Params {
			name := param.Name
			if param.Optional {
				name += "?"
			}

			sb.WriteString(fmt.Sprintf("---@param %s %s %s\n", name, param.Type, param.Description))
		}

		for _, ret := range fn.Returns {
			sb.WriteString(fmt.Sprintf("---@return %s %s %s\n", ret.Type, ret.Name, ret.Description))
		}

		names := lo.Map(fn.Params, func(param *Param, _ int) string {
			return param.Name
		})

		sb.WriteString(fmt.Sprintf("function %s.%s(%s) end\n\n", path, fn.Name, strings.Join(names, ", ")))
	}

	for _, lib := range l.Libs {
		lib.writeDoc(sb, path+"."+lib.Name, false)
	}
}

func writeComment(sb *strings.Builder, text string) {
	if text == "" {
		return
	}

	for _, line := range strings.Split(text, "\n") {
		sb.WriteString("--- " + line + "\n")
	}
}
