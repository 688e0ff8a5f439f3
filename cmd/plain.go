package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/trknhr/personview/internal/config"
	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/model/entity"
	"github.com/trknhr/personview/internal/scheduler"
	"github.com/trknhr/personview/internal/view"
	"github.com/trknhr/personview/internal/viewmodel"
	"golang.org/x/sync/errgroup"
)

var errLoadFailed = errors.New("person load failed")

// runPlain hosts the view on a scheduler.Loop and prints every distinct render
// until the status settles. Cancelling parent before then stops the load and
// returns nil.
func runPlain(parent context.Context, cfg config.Config, out io.Writer, asJSON bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	loop := scheduler.NewLoop(16)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := loop.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	var (
		vm     *viewmodel.PersonViewModel
		final  entity.Status
		record *entity.Person
	)
	settled := make(chan struct{})

	loop.Post(func() {
		vm = viewmodel.New(loop,
			viewmodel.WithSource(cfg.Placeholder()),
			viewmodel.WithDelay(cfg.Delay),
		)

		last := ""
		var pv *view.PersonView
		render := func() {
			status := vm.Status().Get()
			content := view.Render(status, vm.Data().Get())
			if s := content.String(); s != last && !asJSON {
				fmt.Fprintln(out, s)
				last = s
			}
			if status.Settled() && pv != nil {
				final = status
				record = vm.Data().Get()
				pv.Close()
				pv = nil
				close(settled)
			}
		}
		pv = view.New(vm, view.OnChange(render))
		render()
	})

	g.Go(func() error {
		select {
		case <-settled:
			cancel()
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	err := g.Wait()
	// the loop goroutine has returned, so vm is no longer written
	if vm != nil {
		vm.Close()
	}
	if err != nil {
		if parent.Err() != nil {
			logger.Info("load interrupted: %v", parent.Err())
			return nil
		}
		return err
	}

	logger.Debug("load settled with status %s", final)
	if final != entity.StatusLoaded || record == nil {
		return errLoadFailed
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode person: %w", err)
		}
	}
	return nil
}
