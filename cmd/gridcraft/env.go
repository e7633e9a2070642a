package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envFlags maps flags to the environment variables that provide their
// defaults. Explicit flags always win.
var envFlags = map[string]string{
	"db":        "GRIDCRAFT_DB",
	"log-level": "GRIDCRAFT_LOG_LEVEL",
	"config":    "GRIDCRAFT_CONFIG",
}

// envFile is the dotenv file read from the working directory.
var envFile = ".env"

// loadEnv reads .env (if present) without overriding the real environment,
// then fills unset flags from it.
func loadEnv(cmd *cobra.Command) error {
	return godotenvLoadAndApply(cmd.Flags())
}

func godotenvLoadAndApply(flags *pflag.FlagSet) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", envFile, err)
	}
	return applyEnvDefaults(flags)
}

func applyEnvDefaults(flags *pflag.FlagSet) error {
	for name, env := range envFlags {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("%s: invalid value for --%s: %w", env, name, err)
		}
	}
	return nil
}
