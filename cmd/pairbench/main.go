package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pairbench"),
		kong.Description("Benchmark pairstore layouts against naive and hash map baselines"),
		kong.UsageOnError(),
		kongVars(),
	)
	err := cli.Run(os.Stdout)
	ctx.FatalIfErrorf(err)
}
