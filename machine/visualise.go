package machine

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz description of the register file to w. The
// memory store is left out; 64K of bytes does not make a readable graph.
func (m *Machine) Visualise(w io.Writer) {
	regs := m.Registers
	memviz.Map(w, &regs)
}
