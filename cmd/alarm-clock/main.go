package main

import "github.com/oshokin/robot-alarm-clock/cmd/alarm-clock/cmd"

func main() {
	cmd.Execute()
}
