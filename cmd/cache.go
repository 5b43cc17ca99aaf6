package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"sculpturesly.GO/core/cache"
)

var cacheFile string

var cacheDumpCmd = &cobra.Command{
	Use:   "cache:dump",
	Short: "Write the in-process cache to a JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cache.GetInstance().DumpToFile(cacheFile); err != nil {
			log.Fatalf("cache dump: %v", err)
		}
		fmt.Println("Cache dumped to", cacheFile)
	},
}

var cacheRestoreCmd = &cobra.Command{
	Use:   "cache:restore",
	Short: "Load a cache dump back into the in-process cache",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cache.GetInstance().RestoreFromFile(cacheFile); err != nil {
			log.Fatalf("cache restore: %v", err)
		}
		fmt.Println("Cache restored from", cacheFile)
	},
}

func init() {
	cacheDumpCmd.Flags().StringVarP(&cacheFile, "file", "f", "cache.json", "Dump file path")
	cacheRestoreCmd.Flags().StringVarP(&cacheFile, "file", "f", "cache.json", "Dump file path")
	rootCmd.AddCommand(cacheDumpCmd, cacheRestoreCmd)
}
