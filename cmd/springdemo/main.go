// Command springdemo drives spring animations in the terminal or streams
// them over MQTT.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/spring/cmd/springdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
