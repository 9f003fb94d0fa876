// Package components holds the reusable UI pieces of the starter site.
//
// Components are plain functions returning markup trees, built with the el
// DSL. Fragments such as Toast and Counter are also served on their own by
// the fragment endpoints and swapped into the page by the client script.
package components
