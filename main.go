package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/Ahmed-Sermani/pagerank/corpus"
	"github.com/Ahmed-Sermani/pagerank/crawler"
	"github.com/Ahmed-Sermani/pagerank/ranker"
	"github.com/Ahmed-Sermani/pagerank/report"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	appName = "pagerank"
	appSha  = ""

	// errUsage is returned when the command line cannot be parsed.
	errUsage = xerrors.New("usage: pagerank [flags] CORPUS_DIR")
)

func main() {
	rootLogger := logrus.New()
	rootLogger.Out = os.Stderr

	logger := rootLogger.WithFields(logrus.Fields{
		"app":    appName,
		"sha":    appSha,
		"run_id": uuid.New().String(),
	})

	if err := godotenv.Load(); err != nil && !xerrors.Is(err, os.ErrNotExist) {
		logger.WithField("err", err).Error("unable to load .env file")
		os.Exit(1)
	}

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if xerrors.Is(err, errUsage) {
			os.Exit(2)
		}
		logger.WithField("err", err).Error("invalid configuration")
		os.Exit(1)
	}
	if cfg.verbose {
		rootLogger.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdout, logger, clock.WallClock); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

type config struct {
	corpusDir     string
	linkExtractor string
	dampingFactor float64
	samples       int
	seed          int64
	verbose       bool
}

// parseConfig reads the command line. Flag defaults can be overridden through
// the PAGERANK_* environment variables.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var (
		cfg config
		err error
	)

	defDamping, err := envFloat("PAGERANK_DAMPING", ranker.DefaultDampingFactor)
	if err != nil {
		return cfg, err
	}
	defSamples, err := envInt("PAGERANK_SAMPLES", ranker.DefaultSamples)
	if err != nil {
		return cfg, err
	}
	defSeed, err := envInt("PAGERANK_SEED", 0)
	if err != nil {
		return cfg, err
	}
	defExtractor := os.Getenv("PAGERANK_LINK_EXTRACTOR")
	if defExtractor == "" {
		defExtractor = "regex"
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] CORPUS_DIR\n\nFlags:\n", appName)
		fs.PrintDefaults()
	}
	fs.Float64Var(&cfg.dampingFactor, "damping", defDamping, "The probability of following a link instead of jumping to a random page (env PAGERANK_DAMPING)")
	fs.IntVar(&cfg.samples, "samples", defSamples, "The number of pages visited by the sampling estimator (env PAGERANK_SAMPLES)")
	fs.Int64Var(&cfg.seed, "seed", int64(defSeed), "The seed for the sampling estimator; 0 seeds from the current time (env PAGERANK_SEED)")
	fs.StringVar(&cfg.linkExtractor, "link-extractor", defExtractor, "The link extractor to use (supported values: regex, html) (env PAGERANK_LINK_EXTRACTOR)")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	if err = fs.Parse(args); err != nil {
		return cfg, xerrors.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, xerrors.Errorf("expected exactly one corpus directory, got %d arguments: %w", fs.NArg(), errUsage)
	}
	cfg.corpusDir = fs.Arg(0)

	if cfg.dampingFactor <= 0 || cfg.dampingFactor >= 1 {
		fs.Usage()
		return cfg, xerrors.Errorf("damping factor %v is not in the range (0, 1): %w", cfg.dampingFactor, errUsage)
	}
	if cfg.samples < 1 {
		fs.Usage()
		return cfg, xerrors.Errorf("sample count %d must be at least 1: %w", cfg.samples, errUsage)
	}
	return cfg, nil
}

// run ranks the corpus with both estimators and writes the results to out.
// Nothing is written unless both estimators succeed.
func run(cfg config, out io.Writer, logger *logrus.Entry, clk clock.Clock) error {
	extractor, err := crawler.ExtractorByName(cfg.linkExtractor)
	if err != nil {
		return err
	}

	raw, err := crawler.NewCrawler(crawler.Config{
		Extractor: extractor,
		Logger:    logger.WithField("component", "crawler"),
	}).Crawl(os.DirFS(cfg.corpusDir))
	if err != nil {
		return xerrors.Errorf("crawl %q: %w", cfg.corpusDir, err)
	}

	c, err := corpus.Build(raw)
	if err != nil {
		return xerrors.Errorf("corpus %q: %w", cfg.corpusDir, err)
	}
	logger.WithFields(logrus.Fields{
		"corpus": cfg.corpusDir,
		"pages":  c.Len(),
	}).Info("corpus loaded")

	seed := cfg.seed
	if seed == 0 {
		seed = clk.Now().UnixNano()
	}
	rankCfg := ranker.Config{
		DampingFactor: cfg.dampingFactor,
		Samples:       cfg.samples,
		Rand:          rand.New(rand.NewSource(seed)),
		Logger:        logger.WithField("component", "ranker"),
	}

	start := clk.Now()
	sampled, err := ranker.SampleRank(c, rankCfg)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"samples": cfg.samples,
		"seed":    seed,
		"elapsed": clk.Now().Sub(start).Truncate(time.Microsecond),
	}).Info("sampling estimator completed")

	start = clk.Now()
	iterated, err := ranker.IterateRank(c, rankCfg)
	if err != nil {
		return err
	}
	logger.WithField("elapsed", clk.Now().Sub(start).Truncate(time.Microsecond)).Info("iterative estimator completed")

	if err = report.Write(out, fmt.Sprintf("PageRank Results from Sampling (n = %d)", cfg.samples), sampled); err != nil {
		return err
	}
	return report.Write(out, "PageRank Results from Iteration", iterated)
}

func envFloat(key string, def float64) (float64, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, xerrors.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, def int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, xerrors.Errorf("parse %s: %w", key, err)
	}
	return i, nil
}
