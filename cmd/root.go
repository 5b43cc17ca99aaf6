package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sculpturesly",
	Short: "Sculpturesly storefront CLI",
}

// Execute applies registered commands and runs the CLI.
func Execute() {
	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Sculpturesly", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println()

	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
