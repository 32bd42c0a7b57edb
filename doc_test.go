package histview_test

import (
	"fmt"

	"github.com/pixelgraph/histview"
)

func ExampleNew() {
	a := []float64{1, 1, 4, 5, 6, 7, 7, 7, 8, 9, 10, 15, 16, 17, 24, 56, 76, 87, 87}

	// build the chart at screen position (50,50) and hand its grid to the
	// display group
	chart, err := histview.New(a, 50, 50)
	if err != nil {
		panic(err)
	}
	var group histview.Group
	group.Append(chart.Grid())

	chart.Draw()

	fmt.Println("bins:", chart.NumBins())
	fmt.Println("counts:", chart.Bins().Counts())
	// Output:
	// bins: 6
	// counts: [12 3 0 1 0 3]
}

// Label overlays use the exposed bin statistics to place one annotation
// above each bar.
func Example_labelOverlay() {
	data := []float64{5, 4, 3, 2, 7, 5, 3, 3, 3, 3, 2, 9, 7, 6}
	chart, err := histview.New(data, 0, 0)
	if err != nil {
		panic(err)
	}
	chart.Draw()

	xorigin, yorigin := chart.Origin()
	for i := 0; i < chart.NumBins(); i++ {
		count := chart.BinCount(i)
		x := xorigin + i*chart.GraphX()
		y := yorigin - chart.GraphY()*count
		fmt.Printf("bin %d: count %d at (%d,%d)\n", i, count, x, y)
	}
	// Output:
	// bin 0: count 7 at (0,2)
	// bin 1: count 3 at (20,58)
	// bin 2: count 3 at (40,58)
	// bin 3: count 1 at (60,86)
	// bin 4: count 0 at (80,100)
}
