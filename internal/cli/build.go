package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/zipstate/blobstore"
	"github.com/hupe1980/zipstate/builder"
	"github.com/hupe1980/zipstate/dataset"
)

func (a *app) buildCmd() *cobra.Command {
	var (
		download bool
		checksum bool
		dataDir  string
		url      string
		dest     string
		name     string
	)

	c := &cobra.Command{
		Use:   "build",
		Short: "Build a dataset artifact from the GeoNames US export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dataPath := filepath.Join(dataDir, builder.DataFile)

			if checksum {
				f, err := os.Open(dataPath)
				if err != nil {
					return err
				}
				defer f.Close()

				sum, err := builder.Checksum(f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sum)
				return nil
			}

			if download {
				d := builder.NewDownloader(3, a.logger.Logger)
				if _, err := d.Download(ctx, url, dataDir); err != nil {
					return err
				}
				if err := builder.WriteVersion(dataDir, builder.Version(time.Now(), url)); err != nil {
					return err
				}
			}

			version, err := builder.ReadVersion(dataDir)
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("no %s in %s, run with --download first", builder.VersionFile, dataDir)
			}
			if err != nil {
				return err
			}

			var store blobstore.BlobStore
			switch {
			case dest != "":
				store = blobstore.NewLocalStore(dest)
			case a.cfg.Dataset.Source == SourceEmbedded:
				store = blobstore.NewLocalStore(".")
			default:
				var cfgName string
				store, cfgName, err = a.cfg.Store(ctx)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("name") {
					name = cfgName
				}
			}

			f, err := os.Open(dataPath)
			if err != nil {
				return err
			}
			defer f.Close()

			b := builder.New(store, name,
				builder.WithCodec(a.cfg.Codec()),
				builder.WithLogger(a.logger.Logger),
			)
			res, err := b.Build(ctx, f, version)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "wrote %s (%s): %s zip codes, %s %s\n",
					res.Name, res.Version, humanize.Comma(int64(res.Stats.Kept)),
					humanize.Bytes(uint64(res.Bytes)), res.Compression)
				return err
			})
		},
	}

	c.Flags().BoolVar(&download, "download", false, "download the latest export from GeoNames first")
	c.Flags().BoolVar(&checksum, "checksum", false, "print the SHA-256 of the current US.txt and exit")
	c.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding US.txt and version.txt")
	c.Flags().StringVar(&url, "url", builder.DefaultURL, "GeoNames archive URL")
	c.Flags().StringVar(&dest, "dest", "", "write the artifact to this directory instead of the configured store")
	c.Flags().StringVar(&name, "name", dataset.EmbeddedName, "artifact name")
	return c
}
