// Command gib2sgf converts the Tygem GIB files below a directory to SGF.
//
//	gib2sgf [flags] [dir]
//
// Every foo.gib without a foo.sgf next to it is converted, and the SGF file
// gets the modification time of the GIB file. Setting TEST in the
// environment is the same as --check.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"gib2sgf/microservices/repository"
)

func main() {
	var (
		check   = flag.Bool("check", false, "compare existing SGF files with a fresh conversion instead of writing")
		workers = flag.IntP("workers", "j", runtime.NumCPU(), "number of files converted in parallel")
		watch   = flag.Duration("watch", 0, "rescan the directory at this interval until interrupted")
		remote  = flag.String("remote", "", "address of a converter service to use instead of converting locally")
	)
	flag.Parse()

	logger := NewLogger()
	defer logger.Sync()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}
	if _, ok := os.LookupEnv("TEST"); ok {
		*check = true
	}
	if *workers < 1 {
		*workers = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &runner{
		log:     logger,
		convert: localConverter,
		workers: *workers,
		check:   *check,
		out:     os.Stdout,
	}
	if *remote != "" {
		conn, err := grpc.NewClient(*remote, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Fatalw("failed to dial converter", "addr", *remote, "error", err)
		}
		defer conn.Close()
		r.convert = repository.NewConverterRepository(conn, logger).Convert
	}

	if *watch > 0 {
		if err := watchDir(ctx, r, dir, *watch); err != nil {
			logger.Fatalw("watch failed", "error", err)
		}
		return
	}

	stats, err := r.run(ctx, dir)
	if err != nil {
		logger.Fatalw("scan failed", "dir", dir, "error", err)
	}
	if stats.failed > 0 || stats.differ > 0 {
		os.Exit(1)
	}
}

// watchDir runs r over dir every interval until ctx is done. A run that is
// still busy when the next one is due delays it.
func watchDir(ctx context.Context, r *runner, dir string, interval time.Duration) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			stats, err := r.run(ctx, dir)
			if err != nil {
				r.log.Errorw("scan failed", "dir", dir, "error", err)
				return
			}
			r.log.Infow("scan finished", "dir", dir, "converted", stats.converted, "failed", stats.failed)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule scan: %w", err)
	}

	sched.Start()
	<-ctx.Done()
	return sched.Shutdown()
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
