package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/future-architect/ngram"
	"github.com/future-architect/ngram/internal/config"
	"github.com/future-architect/ngram/internal/sink"
	_ "github.com/future-architect/ngram/nlp/japanese"
	_ "github.com/future-architect/ngram/nlp/snowball"
	"go.uber.org/zap"
	_ "gocloud.dev/docstore/memdocstore"
	_ "gocloud.dev/docstore/mongodocstore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// flagsSet records which global flags appeared on the command line, so an
// explicit zero still overrides the config file and reaches validation.
var flagsSet = map[string]bool{}

func markSet(name string) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		flagsSet[name] = true
		return nil
	}
}

var (
	configFile = kingpin.Flag("config", "Config file (YAML)").String()
	size       = kingpin.Flag("size", "N-gram size").Short('n').Action(markSet("size")).Int()
	mode       = kingpin.Flag("mode", "Unit mode (char, word, word-en, word-es, morpheme-ja)").Action(markSet("mode")).String()
	normalize  = kingpin.Flag("normalize", "Lowercase and collapse whitespace before extraction").Action(markSet("normalize")).Bool()
	workers    = kingpin.Flag("workers", "Lines tokenized in parallel").Action(markSet("workers")).Int()

	tokenizeCmd = kingpin.Command("tokenize", "Tokenize JSON records")
	records     = tokenizeCmd.Arg("RECORDS", "JSON records; reads stdin lines when omitted").Strings()

	processCmd = kingpin.Command("process", "Process JSONL files")
	storeURL   = processCmd.Flag("store", "Docstore collection URL to write results to").String()
	inputs     = processCmd.Arg("INPUT", "Input file paths or blob URLs").Required().Strings()
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if flagsSet["size"] {
		cfg.Size = *size
	}
	if flagsSet["mode"] {
		cfg.Mode = *mode
	}
	if flagsSet["normalize"] {
		cfg.Normalize = *normalize
	}
	if flagsSet["workers"] {
		cfg.Workers = *workers
	}
	return cfg, cfg.Validate()
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return s
}

// tokenize prints one JSON array per record and returns the number of failed records.
func tokenize(tokenizer *ngram.Tokenizer, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	failed := 0
	handle := func(line string) {
		ngrams, err := tokenizer.TokenizeText(line)
		if err != nil {
			failed++
			color.New(color.FgRed).Fprintf(stderr, "%s: %s\n", ngram.ErrorKind(err), err.Error())
			fmt.Fprintf(stderr, "  problematic record: %s\n", preview(line))
			return
		}
		b, _ := json.Marshal(ngrams)
		fmt.Fprintln(stdout, string(b))
	}
	if len(args) > 0 {
		for _, arg := range args {
			handle(arg)
		}
		return failed
	}
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		handle(line)
	}
	if err := scanner.Err(); err != nil {
		failed++
		fmt.Fprintf(stderr, "read error: %s\n", err.Error())
	}
	return failed
}

func printResult(w io.Writer, result ngram.Result) {
	fmt.Fprintf(w, "ID: %s\n", result.ID)
	fmt.Fprintf(w, "Label: %d\n", result.Label)
	fmt.Fprint(w, "First 5 n-grams: ")
	for i, token := range result.Ngrams {
		if i >= 5 {
			break
		}
		fmt.Fprintf(w, "'%s' ", token)
	}
	fmt.Fprintf(w, "\nTotal n-grams: %d\n\n", len(result.Ngrams))
}

func processInput(ctx context.Context, tokenizer *ngram.Tokenizer, cfg *config.Config, input string, store *sink.Sink, logger *zap.Logger, stdout io.Writer) error {
	color.New(color.FgBlue).Fprintf(stdout, "\nProcessing file: %s\n", input)
	color.New(color.FgGreen).Fprintln(stdout, "----------------------------------------")

	reader, err := openInput(ctx, input)
	if err != nil {
		return err
	}
	defer reader.Close()

	results, err := tokenizer.ProcessReader(ctx, reader, ngram.ProcessOption{
		Workers: cfg.Workers,
		Logger:  logger.With(zap.String("input", input)),
	})
	if err != nil {
		combined, ok := err.(*ngram.CombinedError)
		if !ok {
			return err
		}
		color.New(color.FgYellow).Fprintf(stdout, "Skipped lines: %d\n", len(combined.Errors))
	}
	if len(results) == 0 {
		color.New(color.FgCyan).Fprintln(stdout, "No results found in file.")
		return nil
	}

	fmt.Fprintln(stdout, "First result:")
	printResult(stdout, results[0])
	fmt.Fprintln(stdout, "Last result:")
	printResult(stdout, results[len(results)-1])
	fmt.Fprintf(stdout, "Total processed items: %d\n", len(results))

	if store != nil {
		if err := store.PutAll(ctx, results); err != nil {
			return fmt.Errorf("store error: %w", err)
		}
	}
	return nil
}

func process(ctx context.Context, cfg *config.Config, inputs []string, storeURL string, logger *zap.Logger, stdout, stderr io.Writer) error {
	tokenizer, err := cfg.Tokenizer()
	if err != nil {
		return err
	}
	var store *sink.Sink
	if storeURL != "" {
		store, err = sink.Open(ctx, storeURL)
		if err != nil {
			return err
		}
		defer store.Close()
	}
	var lastErr error
	for _, input := range inputs {
		if err := processInput(ctx, tokenizer, cfg, input, store, logger, stdout); err != nil {
			fmt.Fprintf(stderr, "process error: %s - %s\n", input, err.Error())
			lastErr = err
		}
	}
	return lastErr
}

func main() {
	ctx := context.Background()

	command := kingpin.Parse()
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %s\n", err.Error())
		os.Exit(2)
	}

	switch command {
	case tokenizeCmd.FullCommand():
		tokenizer, err := cfg.Tokenizer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %s\n", err.Error())
			os.Exit(2)
		}
		if tokenize(tokenizer, *records, os.Stdin, os.Stdout, os.Stderr) > 0 {
			os.Exit(1)
		}
	case processCmd.FullCommand():
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err.Error())
		}
		defer logger.Sync()
		if err := process(ctx, cfg, *inputs, *storeURL, logger, os.Stdout, os.Stderr); err != nil {
			logger.Sync()
			os.Exit(1)
		}
	}
}
