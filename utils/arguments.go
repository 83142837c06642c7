package utils

import "flag"

type CommandLineArguments struct {
	ConfigFile       *string
	UseLocalDatabase *bool
	UseFileStore     *bool
	DevelopmentMode  *bool
}

func ParseArguments() *CommandLineArguments {
	cmdArgs := &CommandLineArguments{
		flag.String("config", "./config.default.yml", "Path to the configuration file"),
		flag.Bool("sqlite", false, "Whether to use the local SQLite database"),
		flag.Bool("filestore", false, "Whether to keep the movie library in local JSON files instead of the database"),
		flag.Bool("dev", false, "Whether to start Cinelog in development mode"),
	}
	flag.Parse()

	return cmdArgs
}
