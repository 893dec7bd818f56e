/*
 * json.go, part of coulforce.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package coulomb

import (
	"encoding/json"
	"io"

	chem "github.com/rmera/coulforce"
)

// JSONContribution is the JSON-serializable form of a Contribution.
type JSONContribution struct {
	Group  string
	Charge float64
	Count  int
	Force  []float64
	Norm   float64
	Energy float64
}

// JSONResult is the JSON-serializable form of a Result, for use by
// external programs.
type JSONResult struct {
	Focus         string
	Charge        float64
	ID            int
	Coords        []float64
	Contributions []JSONContribution
	Total         []float64
	Norm          float64
	Energy        float64
}

// An easily JSON-serializable error type.
type JSONError struct {
	IsError  bool //If this is false (no error) all the other fields will be at their zero-values.
	Function string
	Trace    []string
	Message  string
}

// implements the error interface
func (J *JSONError) Error() string {
	return J.Message
}

// MakeJSONError takes an error and the function that gave it, and builds a JSON error.
func MakeJSONError(function string, err error) *JSONError {
	return &JSONError{IsError: true, Function: function, Trace: chem.Trace(err), Message: err.Error()}
}

// JSON returns the serializable form of R.
func (R *Result) JSON() *JSONResult {
	J := &JSONResult{
		Focus:         R.Focus.Name,
		Charge:        R.Focus.Charge,
		Coords:        append([]float64(nil), R.Focus.Coord.RawRowView(0)...),
		Contributions: make([]JSONContribution, 0, len(R.Contributions)),
		Total:         append([]float64(nil), R.Total.RawRowView(0)...),
		Norm:          R.Magnitude(),
		Energy:        R.Energy,
	}
	if R.Focus.Atom != nil {
		J.ID = R.Focus.Atom.ID
	}
	for _, c := range R.Contributions {
		J.Contributions = append(J.Contributions, JSONContribution{
			Group:  c.Group.Name,
			Charge: c.Group.Charge,
			Count:  c.Count,
			Force:  append([]float64(nil), c.Force.RawRowView(0)...),
			Norm:   c.Force.Norm(0),
			Energy: c.Energy,
		})
	}
	return J
}

// WriteJSON encodes the results as a JSON array to out.
func WriteJSON(out io.Writer, results []*Result) error {
	js := make([]*JSONResult, 0, len(results))
	for _, r := range results {
		js = append(js, r.JSON())
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		return MakeJSONError("WriteJSON", err)
	}
	return nil
}
