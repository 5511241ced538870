package config

import (
	"errors"
	"fmt"
)

// ErrLoadConfig and ErrInvalidConfig are the two kinds callers branch on.
// The load errors below wrap ErrLoadConfig and name the layer that failed.
var (
	ErrLoadConfig    = errors.New("load tempmap config")
	ErrInvalidConfig = errors.New("invalid tempmap config")

	ErrConfigFile   = fmt.Errorf("%w: file from %s", ErrLoadConfig, EnvConfigPath)
	ErrConfigEnv    = fmt.Errorf("%w: %s* environment", ErrLoadConfig, EnvPrefix)
	ErrConfigDecode = fmt.Errorf("%w: decode", ErrLoadConfig)
)
