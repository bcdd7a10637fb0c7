package league

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const defaultChartHeight = "420px"

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartRenderer turns a derived ChartView into server-side ECharts HTML.
// Pan/zoom, tooltips, and the restore control are delegated to the charting
// runtime; the renderer only declares them.
type ChartRenderer struct {
	cache      RenderCache
	assetsHost string
}

// ChartRendererOption customizes renderer behavior.
type ChartRendererOption func(*ChartRenderer)

// WithRenderCache injects a render cache.
func WithRenderCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithAssetsHost rewrites the assets host so the ECharts runtime loads from
// a CDN or self-hosted bucket.
func WithAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer with the shared TTL cache.
func NewChartRenderer(options ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{cache: sharedChartCache}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render returns chart HTML for the view, memoized on (view, theme).
func (r *ChartRenderer) Render(view ChartView, theme Theme) (string, error) {
	renderFn := func() (string, error) {
		return r.render(view, theme)
	}
	if r.cache == nil {
		return renderFn()
	}
	key := fmt.Sprintf("%s:%s", theme.Normalize(), stateHash(view))
	return r.cache.GetOrRender(key, renderFn)
}

func (r *ChartRenderer) render(view ChartView, theme Theme) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(r.globalChartOptions(view, theme)...)
	line.SetXAxis(view.Dates)
	for _, series := range view.Lines {
		line.AddSeries(series.Label, toLineData(series.Points),
			charts.WithLineStyleOpts(opts.LineStyle{Color: series.Color, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: series.Color}),
		)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func (r *ChartRenderer) globalChartOptions(view ChartView, theme Theme) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  theme.ChartTheme(),
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	zoomStart := initialZoomStart(view)
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: view.Heading}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				Restore: &opts.ToolBoxFeatureRestore{Show: opts.Bool(true), Title: "Reset"},
			},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", Start: zoomStart, End: 100},
			opts.DataZoom{Type: "slider", Start: zoomStart, End: 100},
		),
	}
}

// initialZoomStart converts the view's trimmed window into the percentage
// offset the data-zoom component wants. Zero means the full range.
func initialZoomStart(view ChartView) float32 {
	if view.WindowStart == "" || len(view.Dates) < 2 {
		return 0
	}
	idx := 0
	for i, date := range view.Dates {
		if date >= view.WindowStart {
			idx = i
			break
		}
	}
	return float32(idx) / float32(len(view.Dates)-1) * 100
}

func toLineData(points []*float64) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		if point == nil {
			// A nil value renders as a gap, not a zero.
			data[i] = opts.LineData{Value: nil}
			continue
		}
		data[i] = opts.LineData{Value: *point}
	}
	return data
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
