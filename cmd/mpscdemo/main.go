// Command mpscdemo runs several producers against one bounded channel and
// reports how much backpressure they saw.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/baxromumarov/mpsc"
	"github.com/baxromumarov/mpsc/await"
	"github.com/baxromumarov/mpsc/metrics"
)

type message struct {
	producer int
	seq      int
}

func main() {
	opts := newOptions()
	fs := pflag.NewFlagSet("mpscdemo", pflag.ExitOnError)
	opts.addFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zl, err := newZap(opts.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()
	logger := zapr.NewLogger(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, opts); err != nil {
		logger.Error(err, "demo failed")
		os.Exit(1)
	}
}

// newZap maps a logr verbosity onto a zap level; V(n) logs at zap level -n.
func newZap(verbosity int) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	return cfg.Build()
}

func run(ctx context.Context, logger logr.Logger, opts *options) error {
	tx, rx := mpsc.New[message](opts.Capacity,
		mpsc.WithName("demo"),
		mpsc.WithLogger(logger),
	)
	defer rx.Discard()

	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(metrics.NewCollector("demo", rx))
		srv := &http.Server{
			Addr:              opts.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, "metrics server stopped")
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", opts.MetricsAddr)
	}

	start := time.Now()
	var wg conc.WaitGroup
	errs := make([]error, opts.Producers)
	for p := 0; p < opts.Producers; p++ {
		ptx := tx.Clone()
		wg.Go(func() {
			defer ptx.Close()
			for i := 0; i < opts.Messages; i++ {
				if err := await.Send(ctx, ptx, message{producer: p, seq: i}); err != nil {
					errs[p] = fmt.Errorf("producer %d: %w", p, err)
					return
				}
			}
		})
	}
	tx.Close()

	received := 0
	last := make(map[int]int, opts.Producers)
	for m := range await.Pipe(ctx, rx) {
		if prev, ok := last[m.producer]; ok && m.seq != prev+1 {
			return fmt.Errorf("producer %d: got seq %d after %d", m.producer, m.seq, prev)
		}
		last[m.producer] = m.seq
		received++
		if opts.ConsumeDelay > 0 {
			time.Sleep(opts.ConsumeDelay)
		}
	}

	// Pipe ending early on cancel leaves producers parked; Discard releases them.
	rx.Discard()
	wg.Wait()

	st := rx.Stats()
	logger.Info("done",
		"received", received,
		"sent", st.Sent,
		"rejected", st.Rejected,
		"elapsed", time.Since(start).String(),
	)

	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
