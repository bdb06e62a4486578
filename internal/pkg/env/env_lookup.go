package env

import (
	"fmt"
	"os"
	"strconv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetBoolFromEnv(envName string, val *bool) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", envVal, envName, err)
	}

	*val = parsed
	return nil
}

func TrySetInt64FromEnv(envName string, val *int64) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseInt(envVal, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", envVal, envName, err)
	}

	*val = parsed
	return nil
}
