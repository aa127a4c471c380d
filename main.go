package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"

	"awaresnake/pkg/engine/clock"
	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/config"
	"awaresnake/pkg/game/content"
	"awaresnake/pkg/game/gameplay"
	"awaresnake/pkg/game/loop"
	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/renderer/cellterm"
	"awaresnake/pkg/game/renderer/ebiten"
	"awaresnake/pkg/game/renderer/tui"
	"awaresnake/pkg/game/renderer/web"
)

type options struct {
	renderer  string
	addr      string
	seed      int64
	grid      int
	tick      time.Duration
	localeDir string
	lang      string
}

func main() {
	var opts options
	flag.StringVar(&opts.renderer, "renderer", "tui", "front end: tui, tcell, ebiten or web")
	flag.StringVar(&opts.addr, "addr", "127.0.0.1:8080", "listen address for the web front end")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.IntVar(&opts.grid, "grid", config.GridSize, "board size in cells")
	flag.DurationVar(&opts.tick, "tick", config.TickInterval, "time between moves")
	flag.StringVar(&opts.localeDir, "locale-dir", "", "directory holding <lang>/LC_MESSAGES/default.po catalogs")
	flag.StringVar(&opts.lang, "lang", "en_US", "catalog language")
	flag.Func("bind", "rebind an action to a single key, as action=code (e.g. up=i); repeatable", input.Bind)
	flag.Parse()
	defer glog.Flush()

	if err := run(opts); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg := config.Default()
	cfg.GridSize = opts.grid
	cfg.TickInterval = opts.tick
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	content.Configure(opts.localeDir, opts.lang)

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	glog.Infof("starting: renderer=%s grid=%d tick=%v seed=%d", opts.renderer, cfg.GridSize, cfg.TickInterval, seed)

	m := gameplay.New(cfg, rand.New(rand.NewSource(seed)), clock.SystemTime{})

	r, err := newRenderer(opts, cfg)
	if err != nil {
		return err
	}
	if err := r.Init(); err != nil {
		return fmt.Errorf("renderer %s: %w", opts.renderer, err)
	}
	defer r.Close()
	if t, ok := r.(*tui.TUIRenderer); ok {
		t.CheckSize(cfg.GridSize)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		err := loop.New(m, r).Run(ctx)
		cancel()
		loopErr <- err
	}()

	// Some front ends (ebiten) must own the main goroutine
	renderErr := r.Run(ctx)
	cancel()
	err = <-loopErr

	snap := m.Snapshot()
	glog.Infof("finished: score=%d length=%d attempts=%d realized=%v", snap.Score, len(snap.Snake), snap.EscapeAttempts, snap.HasRealized)

	if renderErr != nil {
		return fmt.Errorf("renderer %s: %w", opts.renderer, renderErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func newRenderer(opts options, cfg config.Config) (renderer.Renderer, error) {
	switch opts.renderer {
	case "tui":
		return tui.New(os.Stdin, os.Stdout), nil
	case "tcell":
		return cellterm.New(nil), nil
	case "ebiten":
		return ebiten.New(cfg.GridSize), nil
	case "web":
		return web.New(opts.addr), nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want tui, tcell, ebiten or web)", opts.renderer)
}
