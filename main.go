package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gemcheck/internal/catalog"
	"gemcheck/internal/config"
	"gemcheck/internal/probe"
	"gemcheck/internal/report"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var envFile string

	rootCmd := &cobra.Command{
		Use:          "gemcheck",
		Short:        "Gemini model compatibility checker",
		Long:         "Probes candidate Gemini model identifiers with a trivial prompt and reports which ones are usable with your API key.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, envFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "Path to optional env file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List live models that support text generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, envFile)
		},
	}
	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			logrus.Errorf("%v", err)
			os.Exit(2)
		}
		logrus.Fatalf("%v", err)
	}
}

func runCheck(cmd *cobra.Command, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logrus.Infof("using API key: %s", cfg.RedactedKey())
	logrus.Infof("found %d model names to test", len(catalog.Candidates))

	ctx := cmd.Context()
	gen, err := probe.NewGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init client: %w", err)
	}

	results := probe.Run(ctx, gen, catalog.CandidateNames(), probe.DefaultPrompt)
	report.Write(cmd.OutOrStdout(), results, catalog.Restricted, catalog.Deprecated)
	return nil
}

func runList(cmd *cobra.Command, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	gen, err := probe.NewGenerator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to init client: %w", err)
	}

	names, err := gen.ListGenerativeModels(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Models that support generateContent:")
	for _, name := range names {
		fmt.Fprintf(out, "- %s\n", name)
	}
	return nil
}
