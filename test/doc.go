// This file is part of Lightmass.
//
// Lightmass is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lightmass is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lightmass.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect functions report a failed expectation with t.Errorf() and
// testing continues. The Demand functions report with t.Fatalf() and are
// for values that later parts of a test depend on.
//
// The ExpectSuccess() and ExpectFailure() functions interpret a value
// according to its type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Every function accepts optional tags. Tags are printed in front of the
// failure message and are useful when an expectation is made inside a loop.
//
//	for i, c := range cases {
//		test.ExpectEquality(t, c.got, c.want, i)
//	}
//
// The RingWriter and CompareWriter types implement io.Writer and are used to
// capture output for later comparison.
package test
