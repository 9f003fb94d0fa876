// Package assets fingerprints static files and resolves asset names to URLs.
//
// Build copies a static directory, inserting a content hash into each file
// name, and returns the Manifest mapping original names to hashed ones:
//
//	{
//	  "app.css": "app.3f2a9c1e.css",
//	  "img/logo.svg": "img/logo.0b7d44e2.svg"
//	}
//
// A Resolver turns an asset name into the URL pages should reference.
// The server uses a passthrough resolver; exports use the manifest so
// hashed files can be cached forever.
package assets
