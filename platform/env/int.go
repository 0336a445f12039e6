package env

import (
	"strconv"

	"go.uber.org/zap"
)

// IntDefault returns the env var parsed as an int. Empty or unparseable values
// fall back to def.
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	value := OrDefault(log, env, def)
	i, err := strconv.Atoi(value)
	if err == nil {
		return i
	}

	log.Warnw("env", "status", "invalid int, using default", "env", env, "value", value, "default", def, "ERROR", err)
	i, _ = strconv.Atoi(def)
	return i
}
