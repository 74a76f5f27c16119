package rates

// Process is a named process-rate series (one IPR column, or a group
// summed from several).
type Process struct {
	Name string
	Data []float64
}

// NewProcess copies the data.
func NewProcess(name string, data []float64) *Process {
	return &Process{
		Name: name,
		Data: append([]float64{}, data...),
	}
}

// Add sums two process series elementwise (truncating to the shorter
// series).
func (p *Process) Add(o *Process) *Process {
	n := len(p.Data)
	if len(o.Data) < n {
		n = len(o.Data)
	}
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = p.Data[i] + o.Data[i]
	}
	return &Process{
		Name: p.Name + "+" + o.Name,
		Data: data,
	}
}

// Scale multiplies the series by k.
func (p *Process) Scale(k float64) *Process {
	data := make([]float64, len(p.Data))
	for i, v := range p.Data {
		data[i] = v * k
	}
	return &Process{Name: p.Name, Data: data}
}

// Sum totals the series.
func (p *Process) Sum() float64 {
	total := 0.0
	for _, v := range p.Data {
		total += v
	}
	return total
}
