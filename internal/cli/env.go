package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix prefixes the environment variable of every flag.
var envPrefix = strings.ToUpper(cmdName) + "_"

// bindEnvVars sets each flag of cmd that was not given on the command line
// from its environment variable, SCROLLVIEW_<FLAG> with dashes replaced by
// underscores. The variable name is appended to the flag usage.
func bindEnvVars(cmd *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		fs.VisitAll(bindFlagToEnv)
	}
}

func bindFlagToEnv(flag *pflag.Flag) {
	name := envName(flag.Name)

	suffix := " ($" + name + ")"
	if !strings.HasSuffix(flag.Usage, suffix) {
		flag.Usage += suffix
	}

	if flag.Changed {
		return
	}

	value, ok := os.LookupEnv(name)
	if !ok {
		return
	}

	err := flag.Value.Set(value)
	if err != nil {
		// Keep the default.
		slog.Error("set flag from environment",
			slog.String("flag", flag.Name),
			slog.String("env", name),
			slog.String("value", value),
			slog.Any("err", err),
		)
	}
}

// envName returns the environment variable for a flag, e.g. "log-level" ->
// "SCROLLVIEW_LOG_LEVEL".
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
