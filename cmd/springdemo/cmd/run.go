package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/spring/cmd/springdemo/internal/config"
	"github.com/go-drift/spring/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Animate the demo properties in the terminal",
		Long: `Animate the demo property set from spring.yaml in the terminal.

Keys:
  space        Toggle between the from and to states
  r            Replay from the from state
  q, Esc       Quit

Edits to spring.yaml are picked up while running.`,
		Usage: "springdemo run [--preset NAME] [--native]",
		Run:   runRun,
	})
}

// demoOptions overrides the demo section of spring.yaml.
type demoOptions struct {
	preset string
	native bool
}

func parseRunArgs(args []string) (demoOptions, error) {
	var opts demoOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "--native" {
			opts.native = true
			continue
		}
		v, skip, ok, err := flagValue(args, i, "--preset")
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
		opts.preset = v
		i += skip
	}
	return opts, nil
}

func (o demoOptions) apply(cfg *config.Resolved) {
	if o.preset != "" {
		cfg.Demo.Preset = o.preset
	}
	if o.native {
		cfg.Demo.Native = true
	}
}

// loadConfig resolves spring.yaml from the project root and registers its
// presets.
func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}
	cfg.RegisterPresets()
	return cfg, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts.apply(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	v, err := newView(screen, cfg.Demo)
	if err != nil {
		return err
	}
	d := newDemo(cfg)
	defer d.close()

	var reloads <-chan string
	var watchErrs <-chan error
	if watcher, err := config.NewWatcher(cfg.Root); err != nil {
		errors.Report(&errors.Error{
			Op:        "config.watch",
			Kind:      errors.KindWatch,
			Subject:   cfg.Root,
			Err:       err,
			Timestamp: time.Now(),
		})
	} else {
		defer watcher.Close()
		reloads, watchErrs = watcher.Events, watcher.Errors
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				switch ev.Rune() {
				case 'q':
					return nil
				case ' ':
					d.toggle()
				case 'r':
					d.replay()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			next, err := config.Resolve(cfg.Root)
			if err == nil {
				err = v.configure(next.Demo)
			}
			if err != nil {
				errors.Report(&errors.Error{
					Op:        "config.reload",
					Kind:      errors.KindConfig,
					Subject:   path,
					Err:       err,
					Timestamp: time.Now(),
				})
				continue
			}
			next.RegisterPresets()
			opts.apply(next)
			cfg = next
			d.reconfigure(cfg)

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			errors.Report(&errors.Error{
				Op:        "config.watch",
				Kind:      errors.KindWatch,
				Subject:   cfg.Root,
				Err:       err,
				Timestamp: time.Now(),
			})

		case <-ticker.C:
			d.frame()
			v.draw(d.values(), status(cfg, d))
		}
	}
}

func status(cfg *config.Resolved, d *demo) string {
	state := "resting"
	if d.animating() {
		state = "moving"
	}
	return fmt.Sprintf("preset %s  native %t  %s  rests %d   space toggle  r replay  q quit",
		cfg.Demo.Preset, cfg.Demo.Native, state, d.rests)
}
