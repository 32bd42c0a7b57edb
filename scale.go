package histview

// ScaleFactors map bin space to pixel space. GraphX is the horizontal pixel
// span of one bin, GraphY the vertical pixels per unit frequency. Both are
// integer-truncated, so canvas pixels beyond Len()*GraphX are simply never
// drawn into.
//
// A canvas narrower than the bin count truncates GraphX to zero; bars then
// collapse to zero width. That outcome is degenerate but deliberate, not an
// error.
type ScaleFactors struct {
	GraphX, GraphY int
}

func deriveScale(spec *BinSpec, width, height int) (ScaleFactors, error) {
	max := spec.MaxCount()
	if max == 0 {
		return ScaleFactors{}, ErrDegenerateScale
	}
	return ScaleFactors{
		GraphX: width / spec.Len(),
		GraphY: height / max,
	}, nil
}

// Normalize linearly remaps value from [oldMin,oldMax] to [newMin,newMax].
// Remapping a range onto itself is the identity. Normalize returns
// ErrEmptyRange when oldMin equals oldMax.
func Normalize(oldMin, oldMax, newMin, newMax, value float64) (float64, error) {
	if oldMax == oldMin {
		return 0, ErrEmptyRange
	}
	return (value-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin, nil
}
