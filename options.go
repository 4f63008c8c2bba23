package hashext

import (
	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
	"github.com/spf13/afero"
)

type ClientOptions struct {
	// FS is used to write forgeries and read batch files
	FS afero.Fs

	// ForgeryStore caches forgeries by request.
	// Set to nil to disable caching
	ForgeryStore gokv.Store

	// Log receives progress messages
	Log func(string)

	// Debug receives details such as cache misses and message sizes
	Debug func(string)
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		FS:           afero.NewOsFs(),
		ForgeryStore: syncmap.NewStore(syncmap.DefaultOptions),
		Log:          func(string) {},
		Debug:        func(string) {},
	}
}

func (o *ClientOptions) fillDefaults() {
	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}

	if o.Log == nil {
		o.Log = func(string) {}
	}

	if o.Debug == nil {
		o.Debug = func(string) {}
	}
}
