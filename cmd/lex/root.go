package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	rootCmd = &cobra.Command{
		Use:           "lex",
		Short:         "lex inspects .lex source files through the parser pipeline",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRoot,
	}

	showVersion       bool
	listTransformsFlg bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "V", false, "print the lex version and exit")
	rootCmd.PersistentFlags().BoolVar(&listTransformsFlg, "list-transforms", false, "list every inspect transform name and exit")
	rootCmd.AddCommand(inspectCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), "lex version", version)
		return nil
	}
	if listTransformsFlg {
		return listTransforms(cmd.OutOrStdout())
	}
	return cmd.Help()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
