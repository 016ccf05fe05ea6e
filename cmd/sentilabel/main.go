// Command sentilabel labels comments read from standard input, one per line,
// and writes one JSON label record per line to standard output.
//
// It is configured through a YAML file named by CONFIG_PATH and SENTILABEL_*
// environment variables; see sentilabel.Config.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fahri-Hilm/sentilabel"
	"github.com/Fahri-Hilm/sentilabel/internal/config"
	"github.com/Fahri-Hilm/sentilabel/internal/logger"
)

const maxLineBytes = 1 << 20

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sentilabel:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	cfg, err := sentilabel.LoadConfig(config.GetConfigPath(""))
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, err := sentilabel.NewEngine(cfg, sentilabel.WithEngineLogger(log))
	if err != nil {
		return err
	}

	texts, err := readLines(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	records, err := engine.LabelBatch(ctx, texts, cfg.Workers)
	if err != nil {
		log.Warn("batch interrupted", logger.Error(err))
	}

	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	stats := sentilabel.Stats(records)
	log.Info("batch complete",
		logger.Int("texts", stats.Total),
		logger.Float64("coverage", stats.Coverage),
		logger.Float64("conflict_rate", stats.ConflictRate),
		logger.Float64("mean_confidence", stats.MeanConfidence),
		logger.Duration("elapsed", time.Since(start)))
	return err
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
