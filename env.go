package goclip

import (
	"os"
)

// EnvProperties collects property overrides for opts from the environment. An option named
// name is looked up as PREFIX_NAME, both parts converted by DefaultEnvNameConverter; the long
// name is tried before the short name. An empty prefix looks up NAME alone.
func EnvProperties(opts *Options, prefix string) Properties {
	return envProperties(opts, prefix, DefaultEnvNameConverter)
}

func (p *Parser) envProperties(opts *Options, prefix string) Properties {
	return envProperties(opts, prefix, p.envNameConverter)
}

func envProperties(opts *Options, prefix string, converter NameConversionFunc) Properties {
	props := Properties{}
	if opts == nil {
		return props
	}

	for _, opt := range opts.HelpOptions() {
		for _, name := range []string{opt.Long(), opt.Short()} {
			if name == "" {
				continue
			}
			if v, ok := os.LookupEnv(envName(prefix, name, converter)); ok {
				props[opt.Key()] = v
				break
			}
		}
	}

	return props
}

func envName(prefix, name string, converter NameConversionFunc) string {
	if prefix == "" {
		return converter(name)
	}

	return converter(prefix) + "_" + converter(name)
}
