// Package render turns markup trees into HTML responses.
//
// It wraps markup.Render with the pieces a server needs around it:
// structured logging, an OpenTelemetry span per render, an optional
// metrics Observer, pooled output buffers and full-document assembly.
//
// # Basic Usage
//
// To render a tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(ctx, node)
//
// To write a fragment to a response:
//
//	err := renderer.RenderToWriter(ctx, w, node)
//
// The fragment is rendered into a buffer first and written in one call.
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Title: "My Page",
//	    Body:  bodyNode,
//	}
//	err := renderer.RenderPage(ctx, w, page)
//
// Document returns the same page as a markup tree for callers that want to
// compose or inspect it.
//
// # Streaming
//
// StreamingRenderer writes the head, body and closing tags as separate
// chunks and flushes after each when the writer is an http.Flusher:
//
//	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
//	err := sr.RenderPage(ctx, page)
package render
