package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/zipstate"
)

type stateResult struct {
	Code  string `json:"code" yaml:"code"`
	Found bool   `json:"found" yaml:"found"`
	State string `json:"state,omitempty" yaml:"state,omitempty"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

func (a *app) stateCmd() *cobra.Command {
	var full bool

	c := &cobra.Command{
		Use:   "state <zip>...",
		Short: "Print the state owning each ZIP or ZIP+4 code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			results := make([]stateResult, 0, len(args))
			for _, code := range args {
				s, ok, err := db.Lookup(code)
				if err != nil {
					return err
				}
				results = append(results, stateResult{Code: code, Found: ok, State: s.Abbr, Name: s.Name})
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					value := r.State
					if full {
						value = r.Name
					}
					if !r.Found {
						value = "-"
					}
					fmt.Fprintf(w, "%s\t%s\n", r.Code, value)
				}
				return nil
			})
		},
	}

	c.Flags().BoolVar(&full, "full", false, "print full state names instead of abbreviations")
	return c
}

type validResult struct {
	Code  string `json:"code" yaml:"code"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func (a *app) validCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <zip>...",
		Short: "Check ZIP and ZIP+4 syntax without consulting the dataset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validResult, 0, len(args))
			for _, code := range args {
				results = append(results, validResult{Code: code, Valid: zipstate.IsValid(code)})
			}

			return a.render(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					fmt.Fprintf(w, "%s\t%t\n", r.Code, r.Valid)
				}
				return nil
			})
		},
	}
}

type zipsResult struct {
	State    string   `json:"state" yaml:"state"`
	Count    int      `json:"count" yaml:"count"`
	Zipcodes []string `json:"zipcodes,omitempty" yaml:"zipcodes,omitempty"`
}

func (a *app) zipsCmd() *cobra.Command {
	var count bool

	c := &cobra.Command{
		Use:   "zips <state>",
		Short: "List the ZIP codes assigned to a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			abbr, err := db.NormToAbbr(args[0])
			if err != nil {
				return err
			}

			res := zipsResult{State: abbr}
			if count {
				res.Count, err = db.CountZipCodes(abbr)
			} else {
				res.Zipcodes, err = db.ZipCodes(abbr)
				res.Count = len(res.Zipcodes)
			}
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				if count {
					fmt.Fprintln(w, res.Count)
					return nil
				}
				for _, z := range res.Zipcodes {
					fmt.Fprintln(w, z)
				}
				return nil
			})
		},
	}

	c.Flags().BoolVar(&count, "count", false, "print only the number of ZIP codes")
	return c
}
