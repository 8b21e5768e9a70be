// Package main is the entry point for the spell converter CLI
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spell-converter",
		Short:         "Convert 5etools spells to tagged YAML",
		Long:          `spell-converter reads a 5etools spell JSON file and writes one self-describing YAML document per spell.`,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newConvertCmd())
	return rootCmd
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
