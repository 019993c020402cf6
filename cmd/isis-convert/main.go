// CLI to convert SciELO ISIS JSON documents to article summaries or fatcat
// releases, one JSON document per line.
//
// $ zstdcat articles.jsonl.zst | isis-convert -f release > releases.jsonl
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/miku/isiskit"
	"github.com/miku/isiskit/config"
	"github.com/miku/isiskit/convert"
	"github.com/miku/isiskit/dateutil"
	"github.com/miku/isiskit/isis"
	"github.com/miku/isiskit/pproc"
	"github.com/miku/isiskit/scielo"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
)

var (
	format         = flag.String("f", config.FormatArticle, "output format (one of: article, release)")
	languageFormat = flag.String("l", string(scielo.DefaultLanguageFormat), "language format (one of: iso 639-2, iso 639-1, raw)")
	numWorkers     = flag.Int("w", runtime.NumCPU(), "number of workers")
	batchSize      = flag.Int("b", 1000, "batch size")
	since          = flag.String("since", "", "only documents updated on or after this date, e.g. 2020-01-01")
	dataDir        = flag.String("d", config.DefaultDataDir, "data directory")
	tablesDir      = flag.String("tables", "", "directory with countries.csv and states.csv overrides")
	outputFile     = flag.String("o", "", "output file, compressed for .gz or .zst suffix, stdout if empty")
	verbose        = flag.Bool("v", false, "verbose output")
	showVersion    = flag.Bool("version", false, "show version")
)

var help = `isis-convert reshapes SciELO ISIS documents

Reads JSON lines, optionally gzip or zstd compressed, from files or stdin.

Examples:

    $ isis-convert -f article articles.jsonl.gz
    $ zstdcat articles.jsonl.zst | isis-convert -f release -since 2020-01-01
    $ isis-convert -f release -o releases.jsonl.zst articles.jsonl.gz

Usage:

`

// errFiltered marks documents dropped by the date filter.
var errFiltered = errors.New("filtered")

type converter struct {
	cfg  config.Config
	opts []scielo.Option

	read    atomic.Int64
	written atomic.Int64
	skipped atomic.Int64
	failed  atomic.Int64
}

func newConverter(cfg config.Config) (*converter, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return &converter{cfg: cfg, opts: opts}, nil
}

// convert turns a single line into the configured output value.
func (c *converter) convert(p []byte) (any, error) {
	doc, err := isis.DecodeDocument(p)
	if err != nil {
		return nil, err
	}
	if !c.cfg.Since.IsZero() && !updatedSince(doc, c.cfg.Since) {
		return nil, errFiltered
	}
	switch c.cfg.Format {
	case config.FormatRelease:
		return convert.ArticleToFatcatRelease(doc, c.opts...)
	default:
		article, err := scielo.NewArticle(doc, c.opts...)
		if err != nil {
			return nil, err
		}
		return article.Summary()
	}
}

// convertBatch converts a batch, logging and counting records that cannot
// be converted. Only encoding errors stop processing.
func (c *converter) convertBatch(batch [][]byte) ([]byte, error) {
	var (
		buf bytes.Buffer
		enc = json.NewEncoder(&buf)
	)
	for _, p := range batch {
		c.read.Add(1)
		v, err := c.convert(p)
		var skip convert.Skip
		switch {
		case errors.Is(err, errFiltered):
			c.skipped.Add(1)
			continue
		case errors.As(err, &skip):
			c.skipped.Add(1)
			log.WithFields(log.Fields{"reason": skip.Error()}).Debug("skipping document")
			continue
		case err != nil:
			c.failed.Add(1)
			log.WithFields(log.Fields{
				"err":    err,
				"record": abbreviate(string(p), 80),
			}).Warn("cannot convert document")
			continue
		}
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		c.written.Add(1)
	}
	return buf.Bytes(), nil
}

// updatedSince uses the update timestamp, the processing date or the update
// date of the article, in that order. Documents without any are dropped.
func updatedSince(doc *isis.Document, cutoff time.Time) bool {
	candidates := []string{doc.UpdatedAt, doc.ProcessingDate}
	if doc.Article != nil {
		if v, ok := doc.Article.FirstOK("v91", isis.MainValue); ok && len(v) == 8 {
			candidates = append(candidates, v[:4]+"-"+v[4:6]+"-"+v[6:])
		}
	}
	for _, v := range candidates {
		if v == "" {
			continue
		}
		t, err := dateutil.Parse(v)
		if err != nil {
			continue
		}
		return dateutil.OnOrAfter(t, cutoff)
	}
	return false
}

// abbreviate keeps the first n runes of s.
func abbreviate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(isiskit.Version)
		os.Exit(0)
	}
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	cfg := config.Default()
	cfg.DataDir = *dataDir
	cfg.TablesDir = *tablesDir
	cfg.LanguageFormat = *languageFormat
	cfg.Format = *format
	cfg.Workers = *numWorkers
	cfg.BatchSize = *batchSize
	cfg.Verbose = *verbose
	if *since != "" {
		t, err := dateutil.Parse(*since)
		if err != nil {
			log.Fatalf("invalid -since value: %v", err)
		}
		cfg.Since = dateutil.BeginningOfDay(t)
	}
	c, err := newConverter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var out io.WriteCloser = os.Stdout
	if *outputFile != "" {
		if out, err = createOutputWriter(*outputFile); err != nil {
			log.Fatal(err)
		}
	}
	var (
		started = time.Now()
		bw      = bufio.NewWriter(out)
		proc    = pproc.NewProcessor(c.convertBatch,
			pproc.WithWorkers(cfg.Workers),
			pproc.WithBatchSize(cfg.BatchSize))
	)
	filenames := flag.Args()
	if len(filenames) == 0 {
		filenames = []string{"-"}
	}
	for _, filename := range filenames {
		var r io.ReadCloser = os.Stdin
		if filename != "-" {
			if r, err = openFile(filename); err != nil {
				log.Fatal(err)
			}
		}
		log.WithFields(log.Fields{"file": filename}).Debug("processing")
		err := proc.Process(ctx, r, bw)
		r.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"read":    c.read.Load(),
		"written": c.written.Load(),
		"skipped": c.skipped.Load(),
		"failed":  c.failed.Load(),
		"elapsed": time.Since(started).Round(time.Millisecond),
	}).Info("done")
}
