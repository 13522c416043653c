package main

import (
	"cadcalc/app"
	"flag"
	"log"
	"os"
)

func main() {
	config := app.DefaultConfig()
	flag.StringVar(&config.Dir, "dir", config.Dir, "directory holding .cir files")
	flag.StringVar(&config.ChartPath, "chart", "", "write an HTML chart of each analysis to this path")
	flag.StringVar(&config.RecordPath, "record", "", "write a JSON record of each analysis to this path")
	flag.BoolVar(&config.ReuseStoredType, "reuse-type", false, "analyze with the stored circuit type instead of asking again")
	flag.Parse()

	if err := app.NewCircuitApp(os.Stdin, os.Stdout, config).Run(); err != nil {
		log.Fatal(err)
	}
}
