package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-drift/spring/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "presets",
		Short: "List animation presets",
		Long: `List the built-in presets and those configured in spring.yaml.

Configured presets replace built-ins of the same name.`,
		Usage: "springdemo presets",
		Run:   runPresets,
	})
}

func runPresets(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	if _, err := loadConfig(); err != nil {
		return err
	}
	return printPresets(os.Stdout)
}

func printPresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTENSION\tFRICTION\tDURATION\tEASING")
	for _, name := range animation.PresetNames() {
		c, _ := animation.LookupPreset(name)
		duration, easing := "-", "-"
		if c.Duration > 0 {
			duration = c.Duration.String()
			easing = c.Easing
			if easing == "" {
				easing = "linear"
			}
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\n", name, c.Tension, c.Friction, duration, easing)
	}
	return w.Flush()
}
