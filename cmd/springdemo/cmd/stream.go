package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-drift/spring/cmd/springdemo/internal/config"
	"github.com/go-drift/spring/cmd/springdemo/internal/stream"
	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/spring"
)

func init() {
	RegisterCommand(&Command{
		Name:  "stream",
		Short: "Publish demo frames over MQTT",
		Long: `Drive the demo spring without a terminal and publish every frame's
values as JSON to an MQTT topic. The final frame of each run is marked
"rest": true.

Without --loop the command exits once the spring rests. With --loop it
swaps from and to at every rest and keeps going until interrupted or
--frames is reached.`,
		Usage: "springdemo stream [--broker URL] [--topic T] [--frames N] [--loop] [--preset NAME]",
		Run:   runStream,
	})
}

type streamOptions struct {
	demoOptions
	broker string
	topic  string
	frames int
	loop   bool
}

func parseStreamArgs(args []string) (streamOptions, error) {
	var opts streamOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--loop":
			opts.loop = true
			continue
		case "--native":
			return opts, fmt.Errorf("--native is not supported by stream")
		}

		matched := false
		for _, name := range []string{"--broker", "--topic", "--frames", "--preset"} {
			v, skip, ok, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			if !ok {
				continue
			}
			matched = true
			i += skip
			switch name {
			case "--broker":
				opts.broker = v
			case "--topic":
				opts.topic = v
			case "--preset":
				opts.preset = v
			case "--frames":
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					return opts, fmt.Errorf("--frames must be a non-negative integer (got %q)", v)
				}
				opts.frames = n
			}
			break
		}
		if !matched {
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runStream(args []string) error {
	opts, err := parseStreamArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if opts.broker != "" {
		cfg.Stream.Broker = opts.broker
	}
	if opts.topic != "" {
		cfg.Stream.Topic = opts.topic
	}

	client, err := stream.DialMQTT(stream.MQTTOptions{
		Broker:   cfg.Stream.Broker,
		ClientID: cfg.Stream.ClientID,
		Username: cfg.Stream.Username,
		Password: cfg.Stream.Password,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := newStreamDriver(stream.NewStreamer(client, cfg.Stream.Topic, cfg.Stream.QoS), cfg.Demo, opts.loop, opts.frames)
	fmt.Printf("Streaming %s to %s on %s\n", cfg.Name, cfg.Stream.Topic, cfg.Stream.Broker)

	ticker := time.NewTicker(cfg.Stream.Interval)
	defer ticker.Stop()
	for driver.step() {
		select {
		case <-ctx.Done():
			driver.stop()
			fmt.Printf("Interrupted after %d frames\n", driver.streamer.Seq())
			return nil
		case <-ticker.C:
		}
	}
	fmt.Printf("Published %d of %d frames\n", driver.streamer.Sent(), driver.streamer.Seq())
	return nil
}

// streamDriver runs the demo spring headless and publishes its frames.
// Each step publishes at most one message, however many properties moved.
type streamDriver struct {
	animator *spring.Animator
	streamer *stream.Streamer
	demo     config.DemoConfig
	loop     bool
	limit    int
	flipped  bool
	handle   *spring.Handle

	moved  bool
	rested spring.Values
}

func newStreamDriver(streamer *stream.Streamer, demo config.DemoConfig, loop bool, limit int) *streamDriver {
	d := &streamDriver{
		animator: spring.NewAnimator(nil),
		streamer: streamer,
		demo:     demo,
		loop:     loop,
		limit:    limit,
	}
	d.start()
	return d
}

func (d *streamDriver) start() {
	to := d.demo.To
	if d.flipped {
		to = d.demo.From
	}
	d.handle = d.animator.Update(spring.Props{
		From:    toValues(d.demo.From),
		To:      toValues(to),
		Preset:  d.demo.Preset,
		OnFrame: func(spring.Values) { d.moved = true },
		OnRest:  func(v spring.Values) { d.rested = v },
	}, false)
}

// step advances one frame. It reports false once the run is over.
func (d *streamDriver) step() bool {
	if d.limit > 0 && d.streamer.Seq() >= d.limit {
		d.stop()
		return false
	}
	animation.StepTickers()
	d.publish()

	select {
	case <-d.handle.Done():
		if !d.loop {
			return false
		}
		d.flipped = !d.flipped
		d.start()
	default:
	}
	return true
}

// publish sends the frame produced by the last step. The frame that brings
// the spring to rest goes out as the rest frame.
func (d *streamDriver) publish() {
	switch {
	case d.rested != nil:
		_ = d.streamer.Send(d.rested, true)
	case d.moved:
		_ = d.streamer.Send(d.animator.Values(), false)
	}
	d.moved, d.rested = false, nil
}

func (d *streamDriver) stop() {
	d.animator.Dispose()
}
