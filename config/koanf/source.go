package koanf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// Source loads configuration into a Koanf instance.
// Later sources override earlier ones.
type Source func(k *koanf.Koanf) error

// Load creates a Koanf instance from sources.
func Load(sources ...Source) (*koanf.Koanf, error) {
	k := koanf.New(".")
	for _, source := range sources {
		if source == nil {
			continue
		}
		if err := source(k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Defaults loads values from a map.
func Defaults(values map[string]any) Source {
	return func(k *koanf.Koanf) error {
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return fmt.Errorf("config defaults: %w", err)
		}
		return nil
	}
}

// File loads a json file.  An empty path is ignored.
func File(path string) Source {
	return func(k *koanf.Koanf) error {
		if path == "" {
			return nil
		}
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("config file %q: %w", path, err)
		}
		return nil
	}
}

// Env loads environment variables starting with prefix.
// TIMEUP_CUR_TIME becomes cur_time for the prefix TIMEUP_.
func Env(prefix string) Source {
	return func(k *koanf.Koanf) error {
		err := k.Load(env.Provider(prefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, prefix))
		}), nil)
		if err != nil {
			return fmt.Errorf("config env: %w", err)
		}
		return nil
	}
}

// Flags loads command line flags.  Unchanged flags only
// supply values missing from earlier sources.
// Dashes in flag names become underscores.
func Flags(flags *pflag.FlagSet) Source {
	return func(k *koanf.Koanf) error {
		if flags == nil {
			return nil
		}
		provider := posflag.ProviderWithFlag(flags, ".", k,
			func(f *pflag.Flag) (string, interface{}) {
				return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
			})
		if err := k.Load(provider, nil); err != nil {
			return fmt.Errorf("config flags: %w", err)
		}
		return nil
	}
}
