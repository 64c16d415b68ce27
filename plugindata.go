package paramnav

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed plugindata/*.yml
var pluginDataFS embed.FS

type (
	// ValueOption is one entry in the closed value list of a named config
	// parameter: the label shown to the user and the raw token the host
	// understands.
	ValueOption struct {
		Label string `yaml:"label"`
		Token string `yaml:"token"`
	}

	// pluginTable describes the named config parameters of one known effect.
	// The parameters repeat per band: bands are discovered by probing
	// ProbeKey with increasing indices until the host reports the key
	// missing. Keys take the 0 based band index, display names the 1 based
	// band number.
	pluginTable struct {
		FxName   string `yaml:"fxName"`
		ProbeKey string `yaml:"probeKey"`
		PerBand  []struct {
			DisplayName string        `yaml:"displayName"`
			Key         string        `yaml:"key"`
			Options     []ValueOption `yaml:"options"`
		} `yaml:"perBand"`
	}
)

var pluginTables []pluginTable

func init() {
	if err := LoadPluginTables(pluginDataFS); err != nil {
		panic(fmt.Errorf("embedded plugin tables: %w", err))
	}
}

// LoadPluginTables reads additional plugin table files (*.yml) from fsys and
// appends them to the built in ones, so a binding can teach the core about
// further effects without recompiling.
func LoadPluginTables(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".yml") {
			return err
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		var table pluginTable
		if err := yaml.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		pluginTables = append(pluginTables, table)
		return nil
	})
}

// namedConfigParamsFor builds the named config parameters of one effect, by
// matching its name against the plugin tables and probing how many bands it
// currently has.
func namedConfigParamsFor(chain FxChain, fx int) []namedConfigParam {
	name, ok := chain.Name(fx)
	if !ok {
		return nil
	}
	var params []namedConfigParam
	for _, table := range pluginTables {
		if table.FxName != name {
			continue
		}
		for band := 0; ; band++ {
			if _, ok := chain.NamedConfig(fx, fmt.Sprintf(table.ProbeKey, band)); !ok {
				// This band doesn't exist.
				break
			}
			for _, t := range table.PerBand {
				params = append(params, namedConfigParam{
					info:        info{min: 0, max: float64(len(t.Options) - 1), step: 1, largeStep: 1},
					chain:       chain,
					fx:          fx,
					displayName: fmt.Sprintf(t.DisplayName, band+1),
					key:         fmt.Sprintf(t.Key, band),
					options:     t.Options,
				})
			}
		}
	}
	return params
}
