package vm

import (
	"bytes"
	"context"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
	"path/filepath"
)

// ScriptInfo is read from the header of a script.
// Header lines start with "--|" and form a YAML document:
//
//	--| name: forge
//	--| description: Forge a signature
//	--| version: v0.1.0
type ScriptInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

func (s *ScriptInfo) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must be set")
	}

	if s.Version != "" && !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid semver %q", s.Version)
	}

	return nil
}

// Script is a Lua script that uses the hashext module
type Script struct {
	info      ScriptInfo
	path      string
	rawScript []byte
	options   Options
}

func (s *Script) Info() ScriptInfo {
	return s.info
}

func (s *Script) Path() string {
	return s.path
}

func extractInfo(script []byte) (ScriptInfo, error) {
	var (
		infoLines  [][]byte
		infoPrefix = []byte("--|")
	)

	for _, line := range bytes.Split(script, []byte("\n")) {
		if bytes.HasPrefix(line, infoPrefix) {
			infoLines = append(infoLines, bytes.TrimPrefix(line, infoPrefix))
		}
	}

	var info ScriptInfo
	if err := yaml.Unmarshal(bytes.Join(infoLines, []byte("\n")), &info); err != nil {
		return ScriptInfo{}, err
	}

	return info, nil
}

// LoadScript reads the script at path.
// Scripts without a header are named after their file.
func LoadScript(fs afero.Fs, path string) (*Script, error) {
	stat, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("not a file")
	}

	rawScript, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	info, err := extractInfo(rawScript)
	if err != nil {
		return nil, errors.Wrap(err, "info")
	}

	if info.Name == "" {
		info.Name = filepath.Base(path)
	}

	if err := info.validate(); err != nil {
		return nil, errors.Wrap(err, "info")
	}

	return &Script{
		info:      info,
		path:      path,
		rawScript: rawScript,
		options:   Options{FS: fs},
	}, nil
}

// Run executes the script in a fresh state.
// args are available to the script as the global table "arg".
func (s *Script) Run(ctx context.Context, args []string) error {
	state := NewState(s.options)
	defer state.Close()

	state.SetContext(ctx)

	argTable := state.NewTable()
	for _, a := range args {
		argTable.Append(lua.LString(a))
	}
	state.SetGlobal("arg", argTable)

	lfunc, err := state.Load(bytes.NewReader(s.rawScript), s.info.Name)
	if err != nil {
		return err
	}

	return state.CallByParam(lua.P{
		Fn:      lfunc,
		NRet:    0,
		Protect: true,
	})
}
