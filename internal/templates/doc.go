// Package templates scaffolds new starter projects.
//
// # Available Templates
//
//   - minimal: a config file and an empty static directory
//   - site: config with live reload plus a stylesheet and robots.txt
//   - s3: the site template with S3 export settings
//
// # Usage
//
//	tmpl, err := templates.Get("site")
//	if err != nil {
//	    return err
//	}
//	files, err := tmpl.Create(dir, templates.Config{ProjectName: "blog"})
//
// # Template Variables
//
//	{{.ProjectName}}  - Name of the project
//	{{.Port}}         - Server port
//	{{.Bucket}}       - S3 bucket (s3 template)
//	{{.Region}}       - S3 region (s3 template)
package templates
