package domain

// Row is one day of weather as read from the input file.
// Temperatures are whole degrees Fahrenheit.
type Row struct {
	Date     string `json:"date"`
	MinTempF int    `json:"min_temp_f"`
	MaxTempF int    `json:"max_temp_f"`
}

// Table is an ordered sequence of rows in file order. Order is significant:
// it decides tie-breaks and display order. Nothing in this package mutates a
// Table it is given.
type Table []Row

// MinTemps returns the daily minimums converted to Celsius, in row order.
func (t Table) MinTemps() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = ConvertFToC(float64(r.MinTempF))
	}
	return out
}

// MaxTemps returns the daily maximums converted to Celsius, in row order.
func (t Table) MaxTemps() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = ConvertFToC(float64(r.MaxTempF))
	}
	return out
}
