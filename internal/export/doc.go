// Package export writes the site as static HTML files and optionally
// publishes them to S3.
//
//	exp := &export.Exporter{
//	    Registry: pages.Default(),
//	    Renderer: render.NewRenderer(render.RendererConfig{}),
//	    Dir:      "dist",
//	}
//	if cfg.Export.S3.Bucket != "" {
//	    client := export.NewS3Client(cfg.Export.S3)
//	    exp.Publisher = export.NewS3Publisher(client, cfg.Export.S3.Bucket, cfg.Export.S3.Prefix)
//	}
//	results, err := exp.Export(ctx)
package export
