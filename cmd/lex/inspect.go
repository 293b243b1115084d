package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/lexfmt/lex/lex"
)

var outPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect <path> <transform>",
	Short: "parse a .lex file and print one of the enumerated transforms",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to this path instead of stdout (atomic rename)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]
	xform, ok := transforms[name]
	if !ok {
		return fmt.Errorf("unknown transform %q; see --list-transforms", name)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	res, err := lex.Parse(src, path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, d := range res.Diagnostics() {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
	}

	if outPath == "" {
		return xform(cmd.OutOrStdout(), res)
	}

	var buf bytes.Buffer
	if err := xform(&buf, res); err != nil {
		return err
	}

	pf, err := renameio.TempFile("", outPath)
	if err != nil {
		return fmt.Errorf("preparing atomic write to %s: %w", outPath, err)
	}
	defer pf.Cleanup()
	if _, err := pf.Write(buf.Bytes()); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
