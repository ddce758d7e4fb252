package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urlkit/legacyurl/internal/config"
	"github.com/urlkit/legacyurl/internal/logger"
	"github.com/urlkit/legacyurl/internal/urlio"
	"github.com/urlkit/legacyurl/internal/urlparser"
)

func main() {
	inputFile := flag.String("input", "", "Path to a file containing URLs, one per line")
	inputFileAlias := flag.String("i", "", "Alias for -input")
	configPath := flag.String("config", "", "Path to a YAML or JSON configuration file")
	configPathAlias := flag.String("c", "", "Alias for -config")
	parseQuery := flag.Bool("parse-query", false, "Decode the query string into key/value pairs")
	slashesDenoteHost := flag.Bool("slashes-denote-host", false, "Treat leading // as an authority for scheme-less input")
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	flag.Parse()

	if *inputFile == "" {
		*inputFile = *inputFileAlias
	}
	if *configPath == "" {
		*configPath = *configPathAlias
	}

	cfg, err := config.LoadGlobalConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	opts := urlparser.Options{
		ParseQuery:        *parseQuery || cfg.ParserConfig.ParseQueryString,
		SlashesDenoteHost: *slashesDenoteHost || cfg.ParserConfig.SlashesDenoteHost,
	}

	urls, err := collectURLs(flag.Args(), *inputFile, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect input URLs")
		os.Exit(1)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: legacyurl [flags] <url> [<url>...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	parser := urlparser.NewParser(opts, log)
	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	for _, u := range urls {
		record := parser.Parse(u)
		if err := enc.Encode(record); err != nil {
			log.Error().Err(err).Str("url", u).Msg("Failed to encode record")
			os.Exit(1)
		}
	}

	log.Info().Int("count", len(urls)).Msg("Finished parsing URLs")
}

// collectURLs gathers input from positional args, an input file, or stdin
// when input is piped.
func collectURLs(args []string, inputFile string, log zerolog.Logger) ([]string, error) {
	urls := append([]string(nil), args...)

	if inputFile != "" {
		fromFile, err := urlio.ReadURLsFromFile(inputFile, log)
		if err != nil {
			return nil, err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			fromStdin, err := urlio.ReadURLs(os.Stdin)
			if err != nil {
				return nil, err
			}
			urls = append(urls, fromStdin...)
		}
	}

	return urls, nil
}
