// isis-strnorm normalizes lines the way free form affiliation values are
// compared, useful to inspect country or state spellings.
//
// $ cut -f 3 affiliations.tsv | isis-strnorm -a location | sort | uniq -c
package main

import (
	"bytes"
	"context"
	"flag"
	"os"

	"github.com/miku/isiskit/normal"
	"github.com/miku/isiskit/pproc"
	log "github.com/sirupsen/logrus"
)

var (
	algo       = flag.String("a", "location", "normalization algorithm (one of: location, clean, nodia, upper, space)")
	numWorkers = flag.Int("w", 4, "number of workers")
)

func normalizerByName(name string) (normal.Normalizer, bool) {
	switch name {
	case "location":
		return normal.Location, true
	case "clean":
		return normal.NormalizerFunc(normal.Clean), true
	case "nodia":
		return &normal.DiacriticsNormalizer{}, true
	case "upper":
		return &normal.UpperNormalizer{}, true
	case "space":
		return &normal.SpaceNormalizer{}, true
	}
	return nil, false
}

// procNormAdapt applies a normalizer to every line of a batch.
func procNormAdapt(n normal.Normalizer) pproc.BatchFunc {
	return func(batch [][]byte) ([]byte, error) {
		var buf bytes.Buffer
		for _, b := range batch {
			buf.WriteString(n.Normalize(string(b)))
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	}
}

func main() {
	flag.Parse()
	n, ok := normalizerByName(*algo)
	if !ok {
		log.Fatalf("invalid normalizer name: %s", *algo)
	}
	pp := pproc.NewProcessor(procNormAdapt(n), pproc.WithWorkers(*numWorkers))
	if err := pp.Process(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
