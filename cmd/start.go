package cmd

import (
	"fmt"
	"log/slog"

	dh "github.com/Sabnaj-42/BookStore-CLI/dataHandler"
	sh "github.com/Sabnaj-42/BookStore-CLI/shellHandler"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	seed     bool
	verbose  bool
	lang     string
	startCmd = &cobra.Command{
		Use:   "start",
		Short: "start cmd opens the interactive bookstore menu",
		Long: `It opens the bookstore menu on the terminal.
                   The catalog lives in memory and is gone when the session ends`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", lang, err)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			catalog := dh.NewCatalog(logger)
			if seed {
				dh.Seed(catalog)
			}

			shell := sh.New(cmd.InOrStdin(), cmd.OutOrStdout(), catalog, sh.Options{Lang: tag, Logger: logger})
			return shell.Run(cmd.Context())
		},
	}
)

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&seed, "seed", true, "start with the sample books")
	startCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log catalog changes to stderr")
	startCmd.Flags().StringVarP(&lang, "lang", "l", "en", "language used to format numbers")
}
