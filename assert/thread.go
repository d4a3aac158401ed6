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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns a number that is different for every goroutine and
// constant for the life of a goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread is the goroutine that owns a resource. The zero value is unbound
// and every check passes.
type Thread struct {
	id uint64
}

// Bind the Thread to the calling goroutine.
func (th *Thread) Bind() {
	if Enabled {
		th.id = GoroutineID()
	}
}

// Check panics if the Thread is bound and the caller is not the goroutine
// it is bound to. The op names the operation in the panic message.
func (th *Thread) Check(op string) {
	if Enabled {
		th.check(op, GoroutineID())
	}
}

func (th *Thread) check(op string, id uint64) {
	if th.id != 0 && id != th.id {
		panic(fmt.Sprintf("%s: called from goroutine %d. owned by goroutine %d", op, id, th.id))
	}
}
