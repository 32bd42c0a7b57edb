// Package histview computes binned frequency distributions from numeric
// samples and rasterizes them as bar charts on small indexed-color bitmaps,
// sized for embedded displays.
//
// A chart is built once from its sample:
//
//	chart, err := histview.New(data, 50, 50)
//	if err != nil {
//		// empty or degenerate sample
//	}
//	chart.Draw()
//
// The chart owns a (width+1)x(height+1) bitmap and a 4-entry palette; both
// are exposed through a Grid, the positioned drawable a host scene graph
// appends and presents:
//
//	var group histview.Group
//	group.Append(chart.Grid())
//
// Bin statistics (NumBins, BinCount, GraphX, Origin) are exposed so host
// code can overlay labels above each bar. Everything is single threaded:
// one writer mutates the bitmap and nothing here locks.
package histview
