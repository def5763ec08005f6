package main

import "github.com/oshokin/robot-alarm-clock/cmd/robot-sim/cmd"

func main() {
	cmd.Execute()
}
