package secular

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"
)

var profileHeader = []string{"a_au", "alpha", "secular_yr", "diffusion_yr", "degenerate"}

// WriteCSV writes the profile as CSV, with an empty secular cell on degenerate points.
func WriteCSV(w io.Writer, points []ProfilePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(profileHeader); err != nil {
		return err
	}
	for _, pt := range points {
		sec := ""
		if !math.IsNaN(pt.Secular) {
			sec = strconv.FormatFloat(pt.Secular, 'e', 6, 64)
		}
		record := []string{
			strconv.FormatFloat(pt.A, 'f', 6, 64),
			strconv.FormatFloat(pt.Alpha, 'f', 6, 64),
			sec,
			strconv.FormatFloat(pt.Diffusion, 'e', 6, 64),
			strconv.FormatBool(pt.Degenerate),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonPoint is a ProfilePoint where an undefined secular timescale is null.
type jsonPoint struct {
	A          float64  `json:"a_au"`
	Alpha      float64  `json:"alpha"`
	Secular    *float64 `json:"secular_yr"`
	Diffusion  float64  `json:"diffusion_yr"`
	Degenerate bool     `json:"degenerate"`
}

// WriteJSON writes the profile as an indented JSON array. JSON has no NaN, so
// an undefined secular timescale is written as null.
func WriteJSON(w io.Writer, points []ProfilePoint) error {
	out := make([]jsonPoint, len(points))
	for i, pt := range points {
		out[i] = jsonPoint{A: pt.A, Alpha: pt.Alpha, Diffusion: pt.Diffusion, Degenerate: pt.Degenerate}
		if !math.IsNaN(pt.Secular) {
			sec := pt.Secular
			out[i].Secular = &sec
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
