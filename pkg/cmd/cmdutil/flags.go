package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("log-file", "", "also write the logs to this file in json format")
}

// OutputFlags defines the flags of the commands that print indicator results
func OutputFlags(flags *pflag.FlagSet) {
	flags.String("output", "table", "output format: table or csv")
	flags.Int("last", 0, "only print the last n rows of each result, 0 prints all rows")
	flags.Int("parallelism", 0, "override the parallelism of the config file")
}
