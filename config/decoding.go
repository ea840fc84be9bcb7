package config

import (
	"reflect"
	"strings"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/mitchellh/mapstructure"
)

func stringToBackendType(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(dbm.BackendType("")) {
		return data, nil
	}

	return dbm.BackendType(strings.ToLower(strings.TrimSpace(data.(string)))), nil
}

// AddDecodeHooks adds decode hooks to the given config to normalize the database backend name
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToBackendType,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
