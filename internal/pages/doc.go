// Package pages defines the full-document routes of the starter site and
// the Registry that the server, the render command and the exporter share.
package pages
