package luadoc

import (
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
	"testing"
)

func twice(L *lua.LState) int {
	L.Push(lua.LNumber(2 * L.CheckNumber(1)))
	return 1
}

var testLib = &Lib{
	Name:        "root",
	Description: "Root library.",
	Libs: []*Lib{
		{
			Name:        "math2",
			Description: "Arithmetic.",
			Vars: []*Var{
				{
					Name:        "two",
					Description: "The number two.",
					Value:       lua.LNumber(2),
					Type:        Number,
				},
			},
			Funcs: []*Func{
				{
					Name:        "twice",
					Description: "Doubles a number.",
					Value:       twice,
					Params: []*Param{
						{Name: "n", Description: "Number to double.", Type: Number},
						{Name: "note", Type: String, Optional: true},
					},
					Returns: []*Param{
						{Name: "doubled", Description: "The doubled number.", Type: Number},
					},
				},
			},
		},
	},
}

func TestLib_Loader(t *testing.T) {
	Convey("Given a state with the library preloaded", t, func() {
		state := lua.NewState()
		defer state.Close()

		state.PreloadModule(testLib.Name, testLib.Loader())

		Convey("When the nested function is called", func() {
			err := state.DoString(`result = require("root").math2.twice(require("root").math2.two)`)

			Convey("Then it should be reachable", func() {
				So(err, ShouldBeNil)
				So(state.GetGlobal("result"), ShouldEqual, lua.LNumber(4))
			})
		})
	})
}

func TestLib_LuaDoc(t *testing.T) {
	Convey("Given a library", t, func() {
		Convey("When LuaDoc() is called", func() {
			doc := testLib.LuaDoc()

			Convey("Then it should render annotated stubs", func() {
				So(doc, ShouldStartWith, "---@meta\n")
				So(doc, ShouldContainSubstring, "local root = {}")
				So(doc, ShouldContainSubstring, "root.math2 = {}")
				So(doc, ShouldContainSubstring, "---@type number\nroot.math2.two = 2")
				So(doc, ShouldContainSubstring, "---@param n number Number to double.")
				So(doc, ShouldContainSubstring, "---@param note? string")
				So(doc, ShouldContainSubstring, "---@return number doubled The doubled number.")
				So(doc, ShouldContainSubstring, "function root.math2.twice(n, note) end")
				So(doc, ShouldEndWith, "return root\n")
			})
		})
	})

	Convey("Given an odd number of table literal arguments", t, func() {
		Convey("Then TableLiteral() should panic", func() {
			So(func() { TableLiteral("key") }, ShouldPanic)
		})

		Convey("Then an even number should render a literal", func() {
			So(TableLiteral("a", String, "b", Number), ShouldEqual, "{a: string, b: number}")
		})
	})
}
