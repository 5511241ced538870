package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/okian/tempmap/internal/domain/tooltip"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// DefaultTitle is the page heading.
const DefaultTitle = "Monthly Global Land-Surface Temperature"

// PageOptions controls WritePage.
type PageOptions struct {
	Title       string
	AssetPrefix string
	// Err is the fetch failure, if any. A failed fetch renders an empty
	// container unless ShowError is set.
	Err       error
	ShowError bool
}

type pageData struct {
	Title           string
	AssetPrefix     string
	HasData         bool
	Rendered        bool
	ShowError       bool
	FirstYear       int
	LastYear        int
	BaseTemperature float64
	SVG             template.HTML
	TooltipOffset   int
	TooltipOpacity  float64
	TooltipFadeMS   int64
}

// WritePage writes a complete HTML document hosting the chart and its tooltip.
func WritePage(w io.Writer, c *Chart, opts PageOptions) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.AssetPrefix == "" {
		opts.AssetPrefix = "/static"
	}

	failed := opts.Err != nil || c == nil
	data := pageData{
		Title:          opts.Title,
		AssetPrefix:    opts.AssetPrefix,
		Rendered:       !failed,
		ShowError:      failed && opts.ShowError,
		TooltipOffset:  tooltip.PointerOffset,
		TooltipOpacity: tooltip.VisibleOpacity,
		TooltipFadeMS:  tooltip.FadeDuration.Milliseconds(),
	}

	if !failed {
		var svg bytes.Buffer
		if err := WriteSVG(&svg, c); err != nil {
			return err
		}
		data.SVG = template.HTML(svg.String()) //nolint:gosec // produced by encoding/xml
		data.HasData = !c.Empty()
		data.FirstYear = c.FirstYear
		data.LastYear = c.LastYear
		data.BaseTemperature = c.BaseTemperature
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePage, err)
	}
	return nil
}
