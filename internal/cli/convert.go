package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/zipstate"
)

type convertResult struct {
	Input string `json:"input" yaml:"input"`
	Value string `json:"value" yaml:"value"`
	Found bool   `json:"found" yaml:"found"`
}

// convertCmd builds a command resolving one value with fn. Misses print
// --default unless --strict is set.
func (a *app) convertCmd(use, short string, fn func(db *zipstate.DB, value string, full bool) (string, error), withFull bool) *cobra.Command {
	var (
		strict bool
		def    string
		full   bool
	)

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			res := convertResult{Input: args[0]}
			res.Value, err = fn(db, args[0], full)
			switch {
			case err == nil:
				res.Found = true
			case strict:
				return err
			default:
				res.Value = def
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Value)
				return err
			})
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "fail when the value is not a state")
	c.Flags().StringVar(&def, "default", "", "value printed when the input is not a state")
	if withFull {
		c.Flags().BoolVar(&full, "full", false, "print the full state name instead of the abbreviation")
	}
	return c
}

func (a *app) abbrCmd() *cobra.Command {
	return a.convertCmd("abbr <name>", "Convert a full state name to its abbreviation",
		func(db *zipstate.DB, v string, _ bool) (string, error) { return db.StateToAbbr(v) }, false)
}

func (a *app) nameCmd() *cobra.Command {
	return a.convertCmd("name <abbr>", "Convert a state abbreviation to its full name",
		func(db *zipstate.DB, v string, _ bool) (string, error) { return db.AbbrToState(v) }, false)
}

func (a *app) normCmd() *cobra.Command {
	return a.convertCmd("norm <value>", "Normalize a state name or abbreviation",
		func(db *zipstate.DB, v string, full bool) (string, error) {
			if full {
				return db.NormToState(v)
			}
			return db.NormToAbbr(v)
		}, true)
}

func (a *app) formatCmd() *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "format <value>",
		Short: "Print a state name or abbreviation in display form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			res := convertResult{Input: args[0], Value: args[0]}
			if v, err := db.FormatStateStrict(args[0]); err == nil {
				res.Value, res.Found = v, true
			} else if strict {
				return err
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Value)
				return err
			})
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "fail when the value is not a state")
	return c
}
