package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/zipstate/internal/buildinfo"
)

type versionResult struct {
	Tool        string `json:"tool" yaml:"tool"`
	Dataset     string `json:"dataset" yaml:"dataset"`
	Kind        string `json:"kind" yaml:"kind"`
	Entries     int    `json:"entries" yaml:"entries"`
	Compression string `json:"compression" yaml:"compression"`
	Bytes       int    `json:"bytes" yaml:"bytes"`
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool and dataset versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			ds := db.Dataset()

			res := versionResult{
				Tool:        buildinfo.String(),
				Dataset:     ds.Version(),
				Kind:        string(ds.Kind()),
				Entries:     ds.Len(),
				Compression: ds.Compression().String(),
				Bytes:       ds.Size(),
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				fmt.Fprintln(w, res.Tool)
				fmt.Fprintf(w, "dataset: %s\n", res.Dataset)
				fmt.Fprintf(w, "kind: %s, %s zip codes, %s %s\n",
					res.Kind, humanize.Comma(int64(res.Entries)), humanize.Bytes(uint64(res.Bytes)), res.Compression)
				return nil
			})
		},
	}
}
