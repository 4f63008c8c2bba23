package hex

import (
	"encoding/hex"
	luadoc "github.com/mangalorg/hashext/vm/doc"
	lua "github.com/yuin/gopher-lua"
)

func Lib() *luadoc.Lib {
	return &luadoc.Lib{
		Name:        "hex",
		Description: "Hex encoding of binary strings.",
		Funcs: []*luadoc.Func{
			{
				Name:        "encode",
				Description: "Encodes the given string as lowercase hex.",
				Value:       encode,
				Params: []*luadoc.Param{
					{
						Name:        "value",
						Description: "The string to encode.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "encoded",
						Description: "The encoded string.",
						Type:        luadoc.String,
					},
				},
			},
			{
				Name:        "decode",
				Description: "Decodes the given hex string.",
				Value:       decode,
				Params: []*luadoc.Param{
					{
						Name:        "value",
						Description: "The hex string to decode.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "decoded",
						Description: "The decoded string.",
						Type:        luadoc.String,
					},
				},
			},
		},
	}
}

func encode(L *lua.LState) int {
	value := L.CheckString(1)
	L.Push(lua.LString(hex.EncodeToString([]byte(value))))
	return 1
}

func decode(L *lua.LState) int {
	value := L.CheckString(1)

	decoded, err := hex.DecodeString(value)
	if err != nil {
		L.RaiseError(err.Error())
		return 0
	}

	L.Push(lua.LString(decoded))
	return 1
}
