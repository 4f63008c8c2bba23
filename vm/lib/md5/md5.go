package md5

import (
	"github.com/mangalorg/hashext"
	luadoc "github.com/mangalorg/hashext/vm/doc"
	"github.com/spf13/afero"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

type LibOptions struct {
	FS afero.Fs
}

func Lib(options LibOptions) *luadoc.Lib {
	return &luadoc.Lib{
		Name:        "md5",
		Description: "MD5 hashing and length extension.",
		Vars: []*luadoc.Var{
			{
				Name:        "block_size",
				Description: "Size of a compression block in bytes.",
				Value:       lua.LNumber(hashext.BlockSize),
				Type:        luadoc.Number,
			},
		},
		Funcs: []*luadoc.Func{
			{
				Name:        "sum",
				Description: "Returns the hex MD5 digest of the given string.",
				Value:       sum,
				Params: []*luadoc.Param{
					{
						Name:        "value",
						Description: "The string to hash.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "digest",
						Description: "32 lowercase hex characters.",
						Type:        luadoc.String,
					},
				},
			},
			{
				Name:        "sum_file",
				Description: "Returns the hex MD5 digest of the file contents.",
				Value:       sumFile(options.FS),
				Params: []*luadoc.Param{
					{
						Name:        "path",
						Description: "Path to the file.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "digest",
						Description: "32 lowercase hex characters.",
						Type:        luadoc.String,
					},
				},
			},
			{
				Name:        "pad",
				Description: "Returns the given string with MD5 padding applied.",
				Value:       pad,
				Params: []*luadoc.Param{
					{
						Name:        "value",
						Description: "The string to pad.",
						Type:        luadoc.String,
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "padded",
						Description: "Padded string, its length is a multiple of block_size.",
						Type:        luadoc.String,
					},
				},
			},
			{
				Name: "extend",
				Description: `Performs a length extension attack.
base and extension are hex encoded. When base is omitted, base_length zero bytes are used.`,
				Value: extend(options.FS),
				Params: []*luadoc.Param{
					{
						Name:        "options",
						Description: "Attack parameters.",
						Type: luadoc.TableLiteral(
							"base_digest", luadoc.String,
							"base_length", luadoc.Number,
							"extension", luadoc.String,
							"base?", luadoc.String,
						),
					},
				},
				Returns: []*luadoc.Param{
					{
						Name:        "message",
						Description: "Hex of the padded base followed by the extension.",
						Type:        luadoc.String,
					},
					{
						Name:        "digest",
						Description: "Digest of the secret followed by the glue padding and the extension.",
						Type:        luadoc.String,
					},
				},
			},
		},
	}
}

func sum(L *lua.LState) int {
	value := L.CheckString(1)
	L.Push(lua.LString(hashext.HashString(value)))
	return 1
}

func sumFile(fs afero.Fs) lua.LGFunction {
	return func(L *lua.LState) int {
		path := L.CheckString(1)

		contents, err := afero.ReadFile(fs, path)
		if err != nil {
			L.RaiseError(err.Error())
			return 0
		}

		L.Push(lua.LString(hashext.Hash(contents)))
		return 1
	}
}

func pad(L *lua.LState) int {
	value := L.CheckString(1)
	L.Push(lua.LString(hashext.Pad([]byte(value))))
	return 1
}

type extendOptions struct {
	BaseDigest string
	BaseLength int
	Extension  string
	Base       *string
}

func extend(fs afero.Fs) lua.LGFunction {
	client := hashext.NewClient(hashext.ClientOptions{FS: fs})

	return func(L *lua.LState) int {
		table := L.CheckTable(1)

		var options extendOptions
		if err := gluamapper.Map(table, &options); err != nil {
			L.ArgError(1, err.Error())
			return 0
		}

		extension, err := hashext.EncodingHex.Decode(options.Extension)
		if err != nil {
			L.RaiseError("extension: %s", err.Error())
			return 0
		}

		var base []byte
		if options.Base != nil {
			base, err = hashext.EncodingHex.Decode(*options.Base)
			if err != nil {
				L.RaiseError("base: %s", err.Error())
				return 0
			}
		}

		forgery, err := client.Extend(hashext.ExtendRequest{
			BaseLength:  options.BaseLength,
			BaseDigest:  options.BaseDigest,
			Extension:   extension,
			AssumedBase: base,
		})
		if err != nil {
			L.RaiseError(err.Error())
			return 0
		}

		L.Push(lua.LString(forgery.MessageHex))
		L.Push(lua.LString(forgery.Digest))
		return 2
	}
}
