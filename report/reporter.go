// Package report handles the classification and display of all messages the
// compiler produces: typed compilation failures, fatal configuration errors,
// and the informational output of a verbose run.
package report

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user.  The reporter respects the set log level.
type Reporter struct {
	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// Indicates whether or not an error has been reported.
	isErr bool
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages (default).
)

// rep is the global reporter instance.
var rep = &Reporter{logLevel: LogLevelVerbose}

// SetLogLevel sets the log level of the global reporter.
func SetLogLevel(logLevel int) {
	rep.logLevel = logLevel
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.isErr
}

// -----------------------------------------------------------------------------

// ReportError reports a compilation error.
func ReportError(err error) {
	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayError(err)
	}
}

// ReportWarning reports a compilation warning.
func ReportWarning(msg string) {
	if rep.logLevel > LogLevelError {
		displayWarning(msg)
	}
}

// ReportCompileHeader reports the pre-compilation header: the package being
// compiled and the output path.  Only displayed at the verbose log level.
func ReportCompileHeader(pkgName, outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(pkgName, outputPath)
	}
}

// ReportCompilationFinished reports the concluding message for a successful
// compilation.  Only displayed at the verbose log level.
func ReportCompilationFinished(outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(outputPath)
	}
}
