package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grpc-boot/container"
	"github.com/grpc-boot/container/internal/logger"
	"github.com/grpc-boot/container/script"
)

func newRootCommand(out io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "container",
		Short:         "Replay operation scripts against stack, queue, list and bst containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	root.SetOut(out)

	root.AddCommand(
		newRunCommand(&logLevel),
		newKindsCommand(),
	)
	return root
}

func newRunCommand(logLevel *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "run <script.yaml|script.json>",
		Short: "Run a script and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := logger.New(*logLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = lggr.Sync() }()

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			report, err := script.NewRunner(lggr).Run(s)
			if err != nil {
				return fmt.Errorf("run script %s: %w", s.Name, err)
			}

			data, err := script.Encode(report, s, output)
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "report format, json or yaml (defaults to the script's output)")
	return cmd
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the container kinds a script can use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, kind := range container.Kinds {
				cmd.Println(kind)
			}
		},
	}
}
