package lib

import (
	luadoc "github.com/mangalorg/hashext/vm/doc"
	"github.com/mangalorg/hashext/vm/lib/hex"
	"github.com/mangalorg/hashext/vm/lib/md5"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts pass to require
const ModuleName = "hashext"

type Options struct {
	FS afero.Fs
}

func Lib(options Options) *luadoc.Lib {
	return &luadoc.Lib{
		Name:        ModuleName,
		Description: `hashext lua SDK. MD5 hashing, length extension attacks and hex helpers.`,
		Libs: []*luadoc.Lib{
			md5.Lib(md5.LibOptions{FS: options.FS}),
			hex.Lib(),
		},
	}
}

func Preload(state *lua.LState, options Options) {
	for _, t := range []lo.Tuple2[string, lua.LGFunction]{
		{A: ModuleName, B: Lib(options).Loader()},
	} {
		state.PreloadModule(t.A, t.B)
	}
}
