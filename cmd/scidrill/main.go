package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scidrill/internal/bootstrap"
	"scidrill/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "scidrill",
		Short:         "Science Olympiad drill trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "question data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newBankCmd(&dataPath))
	root.AddCommand(newSampleCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the scidrill terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newBankCmd(dataPath *string) *cobra.Command {
	bank := &cobra.Command{Use: "bank", Short: "Inspect and grow the question bank"}

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load the question CSV and rebuild the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.BankCLI.Load(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "loaded %d questions across %d events\n", out.Questions, out.Events)
			return nil
		},
	}

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "List events in the question bank",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			events, err := app.BankCLI.ListEvents(context.Background())
			if err != nil {
				return err
			}
			for _, e := range events {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d topics\t%d questions\n", e.Name, e.Topics, e.Questions)
			}
			return nil
		},
	}

	topicsCmd := &cobra.Command{
		Use:   "topics <event>",
		Short: "List topics for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			topics, err := app.BankCLI.ListTopics(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, t := range topics {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d questions\n", t.Name, t.Questions)
			}
			return nil
		},
	}

	var event, topic string
	importCmd := &cobra.Command{
		Use:   "import-pdf <path>",
		Short: "Parse questions out of a PDF and append them to the bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.BankCLI.ImportPDF(context.Background(), args[0], event, topic)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions\n", out.Imported)
			return nil
		},
	}
	importCmd.Flags().StringVar(&event, "event", "", "event to tag imported questions with (required)")
	importCmd.Flags().StringVar(&topic, "topic", "", "topic to tag imported questions with (required)")
	_ = importCmd.MarkFlagRequired("event")
	_ = importCmd.MarkFlagRequired("topic")

	bank.AddCommand(loadCmd, eventsCmd, topicsCmd, importCmd)
	return bank
}

func newSampleCmd(dataPath *string) *cobra.Command {
	var topics []string
	var count int
	var seed int64

	sample := &cobra.Command{
		Use:   "sample <event>",
		Short: "Print the questions a drill would ask, without starting one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(*dataPath)
			if err != nil {
				return err
			}
			var app *bootstrap.App
			if cmd.Flags().Changed("seed") {
				app, err = bootstrap.NewSeeded(cfg, seed)
			} else {
				app, err = bootstrap.New(cfg)
			}
			if err != nil {
				return err
			}
			out, err := app.DrillCLI.Sample(context.Background(), args[0], topics, count)
			if err != nil {
				return err
			}
			for i, q := range out.Questions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. [%s] (%s) %s\n", i+1, q.Topic, q.Type, q.Prompt)
			}
			return nil
		},
	}
	sample.Flags().StringSliceVar(&topics, "topics", nil, "topics to draw from (default all)")
	sample.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")
	sample.Flags().Int64Var(&seed, "seed", 0, "fixed shuffle seed for reproducible output")
	return sample
}
