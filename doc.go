// Package restdown converts lightly-structured Markdown describing a REST
// API into a branded static HTML page plus a JSON summary of the API's
// endpoints.
//
// # Quick Start
//
// Create a converter, convert a document, and write the outputs:
//
//	conv, err := restdown.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, _ := os.ReadFile("api.restdown")
//	result, err := conv.Convert(ctx, restdown.Input{
//	    Path:     "api.restdown",
//	    Markdown: string(src),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	htmlPath, jsonPath, err := restdown.WriteOutputs(result, "api.restdown")
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization and front-matter extraction
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//     with restdown heading-anchor and TOC policies
//  3. HTML post-processing (endpoint headings, shell blocks, intro wrap)
//  4. Brand template rendering and document assembly
//  5. Endpoint extraction from the table of contents
//
// # Document Format
//
// Input files are UTF-8 Markdown with an optional front-matter block
// delimited by two lines of three hyphens, each line "key: value".
// Level-1 headings denote section titles; level-2 headings denote API
// endpoints and should read as "METHOD path" (e.g. "GET /sshkeys/:id").
// Code blocks whose content starts with "$ " are treated as shell
// transcripts.
//
// # Brands
//
// A brand is a directory containing header.html.in and footer.html.in
// templates with %(key)s placeholders, plus an optional media/ directory
// of static assets. The default "api" brand is embedded in the binary.
// Use WithBrandsRoot to load brands from disk, or WithBrandDir to point
// at one brand directory explicitly.
package restdown
