//go:build cli
// +build cli

package main

import (
	_ "sculpturesly.GO/custom"

	"sculpturesly.GO/cmd"
	"sculpturesly.GO/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cmd.Execute()
}
