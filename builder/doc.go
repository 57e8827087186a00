// Package builder produces dataset artifacts from the GeoNames US postal
// code export.
//
// A build reads US.txt, keeps the rows whose admin code is one of the 51
// registry states, stamps a provenance version and writes the encoded
// artifact to a blobstore.BlobStore:
//
//	files, _ := builder.Download(ctx, builder.DefaultURL, "data")
//	f, _ := os.Open(files.Data)
//	b := builder.New(blobstore.NewLocalStore("dist"), "zipcodes.json.gz")
//	res, _ := b.Build(ctx, f, builder.Version(time.Now(), builder.DefaultURL))
package builder
