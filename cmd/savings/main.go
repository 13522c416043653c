package main

import (
	"cadcalc/app"
	"flag"
	"log"
	"os"
)

func main() {
	config := app.DefaultConfig()
	flag.StringVar(&config.PlotPath, "plot", "", "write a balance chart of each year report to this path (.png, .svg, .pdf)")
	flag.Parse()

	if err := app.NewSavingsApp(os.Stdin, os.Stdout, config).Run(); err != nil {
		log.Fatal(err)
	}
}
