// Package main provides a drop-table balance simulator. It rolls a
// drop source many times and prints the observed rarity frequencies
// next to the configured base rates, so table changes can be sanity
// checked before they ship.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/drop"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

func main() {
	source := flag.String("source", "exploration", "drop source to simulate")
	level := flag.Int("level", 1, "player level for scaling")
	trials := flag.Int("trials", 1000000, "number of rolls")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	s := drop.Source(*source)
	valid := false
	for _, known := range drop.Sources() {
		if s == known {
			valid = true
			break
		}
	}
	if !valid {
		log.Fatalf("unknown source %q: valid sources are %v", *source, drop.Sources())
	}
	if *trials <= 0 {
		log.Fatalf("trials must be positive, got %d", *trials)
	}

	engine, err := drop.NewDefault(catalog.Default(), rng.NewSeededSource(*seed))
	if err != nil {
		log.Fatalf("building drop engine: %v", err)
	}

	observed := engine.Statistics(s, *level, *trials)
	base := engine.Table(s)

	fmt.Printf("source=%s level=%d trials=%d seed=%d\n\n", s, *level, *trials, *seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "outcome\tbase\tobserved")
	for _, r := range catalog.Rarities() {
		fmt.Fprintf(w, "%s\t%.5f\t%.5f\n", r, base.Chance(r), observed[string(r)])
	}
	fmt.Fprintf(w, "no_drop\t%.5f\t%.5f\n", base.NoDrop, observed["no_drop"])
	w.Flush()

	// Anything else in the map means Statistics grew a new outcome.
	var extras []string
	for k := range observed {
		if k == "no_drop" || catalog.Rarity(k).Valid() {
			continue
		}
		extras = append(extras, k)
	}
	sort.Strings(extras)
	for _, k := range extras {
		fmt.Printf("unexpected outcome %s: %.5f\n", k, observed[k])
	}
}
