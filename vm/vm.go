package vm

import (
	"github.com/mangalorg/hashext/vm/lib"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
)

type Options struct {
	FS afero.Fs
}

func (o *Options) fillDefaults() {
	if o.FS == nil {
		o.FS = afero.NewMemMapFs()
	}
}

func NewState(options Options) *lua.LState {
	options.fillDefaults()

	libs := []lua.LGFunction{
		lua.OpenBase,
		lua.OpenTable,
		lua.OpenString,
		lua.OpenMath,
		lua.OpenPackage,
	}

	state := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	for _, injectLib := range libs {
		injectLib(state)
	}

	lib.Preload(state, lib.Options{
		FS: options.FS,
	})

	return state
}
