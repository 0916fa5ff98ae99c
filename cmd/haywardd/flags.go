package main

import (
	"flag"
	"io"

	"rsc.io/getopt"
)

var (
	configPath = flag.String("config", "", "path to the JSONC configuration file")
	socketPath = flag.String("socket", "", "path to the IPC control socket (defaults to $XDG_RUNTIME_DIR/hayward.sock)")
	debugFlag  = flag.String("debug", "", "comma-separated debug modes: noatomic, txn_wait, txn_timings")
	verbose    = flag.Bool("verbose", false, "enable debug-level logging")
)

func init() {
	getopt.CommandLine.Init("haywardd", flag.ContinueOnError)
	getopt.CommandLine.SetOutput(io.Discard)
	getopt.Alias("c", "config")
	getopt.Alias("s", "socket")
	getopt.Alias("d", "debug")
	getopt.Alias("v", "verbose")
	getopt.CommandLine.Usage = func() {}
}
