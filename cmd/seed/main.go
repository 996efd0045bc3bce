package main

import (
	"flag"
	"log"
	"os"

	"axiapac.com/timesheets/seed"
	"axiapac.com/timesheets/service"
)

// Writes a demo seed file that demo.seed_file can load.
func main() {
	year := flag.Int("year", seed.DemoYear, "year of week 1")
	weeks := flag.Int("weeks", seed.DemoWeeks, "number of weeks")
	randomSeed := flag.Uint64("seed", 0, "random seed, 0 for random")
	out := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	timesheets := seed.Generate(*year, *weeks, service.NewRand(*randomSeed))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := seed.Encode(w, timesheets); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	if *out != "" {
		log.Printf("[INFO] wrote %d timesheets to %s\n", len(timesheets), *out)
	}
}
