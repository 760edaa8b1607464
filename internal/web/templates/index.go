// Package templates renders the HTML pages of the report server.
package templates

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// ReportEntry is one report link on the index page.
type ReportEntry struct {
	Key         string
	Label       string
	Description string
	URL         string
}

// Index lists the available reports with download links per format and the
// row counts of the loaded dataset.
func Index(reports []ReportEntry, counts map[string]int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.print(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>ACME reports</title></head><body>`)
		p.print(`<h1>ACME reports</h1><ul>`)
		for _, r := range reports {
			p.printf(`<li><strong>%s</strong> <span>%s</span> `,
				templ.EscapeString(r.Label), templ.EscapeString(r.Description))
			for _, format := range []string{"csv", "json", "table", "parquet"} {
				p.printf(`<a href="%s?format=%s">%s</a> `,
					templ.EscapeString(r.URL), format, format)
			}
			p.print(`</li>`)
		}
		p.print(`</ul><h2>Dataset</h2><table>`)

		sources := make([]string, 0, len(counts))
		for src := range counts {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		for _, src := range sources {
			p.printf(`<tr><td>%s</td><td>%d</td></tr>`, templ.EscapeString(src), counts[src])
		}
		p.print(`</table></body></html>`)
		return p.err
	})
}

// printer writes until the first error and remembers it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}
