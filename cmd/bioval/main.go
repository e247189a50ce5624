// Command bioval validates directories of biological file formats.
//
// Usage:
//
//	bioval -format TSVTaxonomy ./data
//	bioval -guess ./data
//	bioval -format DNASequences -level min -watch ./data
//
// The directory is opened through the configured filesystem driver
// (BEAVER_BIOFORMAT_DRIVER, default "local") and checked against the named
// format
// from the default registry. With -guess, every registered format is sniffed
// and the plausible candidates are printed instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gobeaver/bioformat"
	_ "github.com/gobeaver/bioformat/driver/local"
	_ "github.com/gobeaver/bioformat/driver/memory"
	"github.com/gobeaver/bioformat/formats"
)

func main() {
	var (
		formatName = flag.String("format", "", "directory format to validate against")
		levelFlag  = flag.String("level", "", "validation level: min or max (default from BEAVER_BIOFORMAT_LEVEL)")
		guess      = flag.Bool("guess", false, "sniff all registered formats and print candidates")
		sniffOnly  = flag.Bool("sniff", false, "sniff the named format without validating")
		watch      = flag.Bool("watch", false, "revalidate whenever a file in the directory changes")
		listFlag   = flag.Bool("list", false, "list registered format names and exit")
		debug      = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()
	log := logger.Sugar()

	reg := formats.DefaultRegistry()

	if *listFlag {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bioval [flags] <directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	cfg, err := bioformat.GetConfig()
	if err != nil {
		log.Fatalw("loading config", "error", err)
	}
	if *levelFlag != "" {
		cfg.Level = *levelFlag
	}
	if *sniffOnly {
		cfg.SniffOnly = true
	}

	level := formats.Level(cfg.Level)
	if level != formats.LevelMin && level != formats.LevelMax {
		log.Fatalw("invalid validation level", "level", cfg.Level)
	}

	fs, err := bioformat.CreateDriver(cfg)
	if err != nil {
		log.Fatalw("creating filesystem driver", "driver", cfg.Driver, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *guess {
		candidates := formats.Guess(ctx, fs, dir, reg)
		if len(candidates) == 0 {
			log.Infow("no format recognized", "dir", dir)
			os.Exit(1)
		}
		for _, name := range candidates {
			fmt.Println(name)
		}
		return
	}

	if *formatName == "" {
		log.Fatal("one of -format, -guess or -list is required")
	}

	format, ok := reg.Lookup(*formatName)
	if !ok {
		log.Fatalw("unknown format", "format", *formatName, "known", reg.Names())
	}

	run := func() bool {
		if cfg.SniffOnly {
			if format.Sniff(ctx, fs, dir) {
				log.Infow("sniff passed", "format", format.Name, "dir", dir)
				return true
			}
			log.Warnw("sniff failed", "format", format.Name, "dir", dir)
			return false
		}

		if err := format.Validate(ctx, fs, dir, level); err != nil {
			var verr *formats.ValidationError
			if errors.As(err, &verr) {
				log.Warnw("validation failed",
					"format", format.Name,
					"dir", dir,
					"type", verr.Type,
					"message", verr.Message)
			} else {
				log.Warnw("validation failed", "format", format.Name, "dir", dir, "error", err)
			}
			return false
		}

		log.Infow("validation passed", "format", format.Name, "dir", dir, "level", level)
		logChecksums(ctx, log, fs, dir, cfg, format)
		return true
	}

	ok = run()

	if *watch {
		watcher, canWatch := fs.(bioformat.CanWatch)
		if !canWatch {
			log.Fatalw("driver does not support watching", "driver", cfg.Driver)
		}

		cancel := bioformat.OnChange(
			func() (bioformat.ChangeToken, error) {
				return watcher.Watch(ctx, dir+"/*")
			},
			func() {
				log.Debugw("change detected, revalidating", "dir", dir)
				run()
			},
		)
		defer cancel()

		<-ctx.Done()
		return
	}

	if !ok {
		os.Exit(1)
	}
}

// logChecksums records a checksum for every bound file that just validated,
// so the caller can pin the exact bytes the pass covered.
func logChecksums(ctx context.Context, log *zap.SugaredLogger, fs bioformat.FileReader, dir string, cfg *bioformat.Config, format formats.DirectoryFormat) {
	algo := bioformat.ChecksumAlgorithm(cfg.ChecksumAlgorithm)

	entries, err := fs.ListContents(ctx, dir, false)
	if err != nil {
		log.Debugw("listing for checksums", "dir", dir, "error", err)
		return
	}

	for _, e := range entries {
		if e.IsDir {
			continue
		}
		bound := false
		for _, b := range format.Bindings {
			if b.Matches(e.Name) {
				bound = true
				break
			}
		}
		if !bound {
			continue
		}

		sum, err := bioformat.FileChecksum(ctx, fs, e.Path, algo)
		if err != nil {
			log.Debugw("checksum failed", "path", e.Path, "error", err)
			continue
		}
		log.Infow("checksum", "path", e.Path, "algorithm", algo, "sum", sum)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
