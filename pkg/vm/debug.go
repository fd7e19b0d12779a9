package vm

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// adminStyle frames the admin-introspection banner printed in response
// to the privileged "admin" input line. This is a rendering nicety
// over state the VM already owns — it does not add single-stepping or
// any other interactive control.
var adminStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

type adminSnapshot struct {
	PC        Word
	Registers [NumRegisters]Word
}

// renderAdmin writes the current PC and register file to vm.Out.
func (vm *VM) renderAdmin() error {
	snap := adminSnapshot{PC: vm.PC, Registers: vm.Registers}
	body := fmt.Sprintf("admin\n%s", spew.Sdump(snap))
	if vm.Plain {
		_, err := fmt.Fprintln(vm.Out, body)
		return err
	}
	_, err := fmt.Fprintln(vm.Out, adminStyle.Render(body))
	return err
}

// Trace renders a single line describing the instruction about to
// execute at the current PC, for -v/verbose callers (cmd/synacor). It
// never mutates VM state and is safe to call between Step invocations.
func (vm *VM) Trace() string {
	op, err := vm.loadMem(vm.PC)
	if err != nil {
		return fmt.Sprintf("pc=%#04x <%s>", vm.PC, err)
	}
	return fmt.Sprintf("pc=%#04x op=%d regs=%v stack_depth=%d", vm.PC, op, vm.Registers, len(vm.Stack))
}
