// Package llc drives the external LLVM toolchain: it writes generated
// modules to disk, runs the optimizer, and lowers modules to target-specific
// object files.  Every subprocess failure is fatal to the compilation; there
// is no partial-success state.
package llc

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"minigo/report"

	"github.com/llir/llvm/ir"
)

// WriteModule writes the textual IR of mod to the given path.
func WriteModule(mod *ir.Module, llPath string) error {
	file, err := os.OpenFile(llPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return report.Errorf(report.ExternalToolFailure, "failed to open output file `%s`: %s", llPath, err)
	}
	defer file.Close()

	if _, err := file.WriteString(mod.String()); err != nil {
		return report.Errorf(report.ExternalToolFailure, "failed to write module to `%s`: %s", llPath, err)
	}

	return nil
}

// Optimize runs the whole-module optimization pipeline over the module at
// llPath in place, at the given aggressiveness level (1-3).
func Optimize(llPath string, level int) error {
	return run(exec.Command("opt", fmt.Sprintf("-O%d", level), "-S", "-o", llPath, llPath))
}

// CompileModule lowers the module at llPath to an object file at objPath.
func CompileModule(llPath, objPath string) error {
	return run(exec.Command("llc", "-filetype", "obj", "-o", objPath, llPath))
}

// run executes an external toolchain command.  A non-zero exit status or any
// output on the error stream is treated as failure.
func run(cmd *exec.Cmd) error {
	stderrBuff := bytes.Buffer{}
	cmd.Stderr = &stderrBuff

	if err := cmd.Run(); err != nil {
		if stderrBuff.Len() > 0 {
			return report.Errorf(report.ExternalToolFailure, "`%s` failed:\n%s", cmd.Args[0], stderrBuff.String())
		}

		return report.Errorf(report.ExternalToolFailure, "failed to run `%s`: %s", cmd.Args[0], err)
	}

	if stderrBuff.Len() > 0 {
		return report.Errorf(report.ExternalToolFailure, "`%s` reported:\n%s", cmd.Args[0], stderrBuff.String())
	}

	return nil
}
