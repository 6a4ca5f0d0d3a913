package mpsc_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sourcegraph/conc"
	"golang.org/x/sync/errgroup"

	"github.com/baxromumarov/mpsc"
	"github.com/baxromumarov/mpsc/await"
)

const fanInMessages = 1000

// ─────────────────────────────────────────────────────────────────────────────
// 1. Fan-in: P producers, one consumer, bounded buffer
// ─────────────────────────────────────────────────────────────────────────────

func BenchmarkFanIn_Native(b *testing.B) {
	for _, p := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("producers=%d", p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ch := make(chan int, 16)
				wg := conc.NewWaitGroup()
				for range p {
					wg.Go(func() {
						for j := 0; j < fanInMessages; j++ {
							ch <- j
						}
					})
				}
				go func() {
					wg.Wait()
					close(ch)
				}()
				for range ch {
				}
			}
		})
	}
}

func BenchmarkFanIn_Await(b *testing.B) {
	ctx := context.Background()
	for _, p := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("producers=%d", p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tx, rx := mpsc.New[int](16)
				wg := conc.NewWaitGroup()
				for range p {
					ptx := tx.Clone()
					wg.Go(func() {
						defer ptx.Close()
						for j := 0; j < fanInMessages; j++ {
							_ = await.Send(ctx, ptx, j)
						}
					})
				}
				tx.Close()
				for {
					if _, ok, _ := await.Recv(ctx, rx); !ok {
						break
					}
				}
				wg.Wait()
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// 2. Fan-in with error propagation
// ─────────────────────────────────────────────────────────────────────────────

func BenchmarkFanInErrgroup_Native(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ch := make(chan int, 16)
		g, ctx := errgroup.WithContext(context.Background())
		for range 4 {
			g.Go(func() error {
				for j := 0; j < fanInMessages; j++ {
					select {
					case ch <- j:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
				return nil
			})
		}
		go func() {
			_ = g.Wait()
			close(ch)
		}()
		for range ch {
		}
	}
}

func BenchmarkFanInErrgroup_Await(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tx, rx := mpsc.New[int](16)
		g, ctx := errgroup.WithContext(context.Background())
		for range 4 {
			ptx := tx.Clone()
			g.Go(func() error {
				defer ptx.Close()
				for j := 0; j < fanInMessages; j++ {
					if err := await.Send(ctx, ptx, j); err != nil {
						return err
					}
				}
				return nil
			})
		}
		tx.Close()
		for range await.Pipe(ctx, rx) {
		}
		if err := g.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}
