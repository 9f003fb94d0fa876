// Package adapt converts between markup parts and the templ and gomponents
// component models, so existing components can be mixed into a page.
//
// Foreign components are rendered eagerly and embedded as markup.Raw;
// markup parts are exposed lazily and render when the host renders.
package adapt
