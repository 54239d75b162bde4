package report

import (
	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = pterm.FgCyan
	infoStyleBG    = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
)

// displayError displays a compilation error.  Typed compile errors are
// prefixed with their kind.
func displayError(err error) {
	if ce, ok := err.(*CompileError); ok {
		errorStyleBG.Print("Error (" + ce.Kind.String() + ")")
		errorColorFG.Println(" " + ce.Message)
		return
	}

	errorStyleBG.Print("Error")
	errorColorFG.Println(" " + err.Error())
}

// displayWarning displays a compilation warning.
func displayWarning(msg string) {
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + msg)
}

// displayCompileHeader displays the header line printed before compilation
// begins in verbose mode.
func displayCompileHeader(pkgName, outputPath string) {
	infoStyleBG.Print("Compiling")
	infoColorFG.Println(" package `" + pkgName + "` -> " + outputPath)
}

// displayCompilationFinished displays the closing message of a successful
// verbose compilation.
func displayCompilationFinished(outputPath string) {
	successStyleBG.Print("Done")
	successColorFG.Println(" executable written to " + outputPath)
}
