package flowfield

// Streamline locates the samples of one committed line in a [FlowField]. The
// forward samples are stored first, starting with the seed, followed by the
// backward samples in the order they were grown.
type Streamline struct {
	ID       int
	Start    int
	Forward  int
	Backward int
}

// Len returns the number of samples of the line.
func (l Streamline) Len() int { return l.Forward + l.Backward }

// Samples returns the samples of the line in path order, from the end of the
// backward pass through the seed to the end of the forward pass.
func (l Streamline) Samples(ff *FlowField) []Sample {
	out := make([]Sample, 0, l.Len())
	for i := l.Start + l.Len() - 1; i >= l.Start+l.Forward; i-- {
		out = append(out, ff.At(i))
	}
	for i := l.Start; i < l.Start+l.Forward; i++ {
		out = append(out, ff.At(i))
	}
	return out
}

// Curve returns the positions of the line's samples in path order.
func (l Streamline) Curve(ff *FlowField) Curve {
	samples := l.Samples(ff)
	c := make(Curve, len(samples))
	for i, s := range samples {
		c[i] = s.Point
	}
	return c
}
