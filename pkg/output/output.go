package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/repovalidate/pkg/check"
)

// Stdout receives passing results, Stderr failing ones.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor || !supportscolor.Stderr().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
// Details are indented to line up under the check name.
func PrintResult(r check.Result) {
	if r.OK() {
		_, _ = fmt.Fprintf(Stdout, "%s[OK]%s %s\n", green, reset, formatLabel(r.Name))
		printDetails(Stdout, r.Details, 5)
		return
	}
	_, _ = fmt.Fprintf(Stderr, "%s[FAIL]%s %s\n", red, reset, formatLabel(r.Name))
	printDetails(Stderr, r.Details, 7)
}

// PrintInfo writes a plain informational line to stdout.
func PrintInfo(msg string) {
	_, _ = fmt.Fprintln(Stdout, formatLabel(msg))
}

// PrintError reports an error that did not come from a check.
func PrintError(err error) {
	_, _ = fmt.Fprintf(Stderr, "%sError:%s %v\n", red, reset, err)
}

func printDetails(w io.Writer, details []string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, d := range details {
		_, _ = fmt.Fprintf(w, "%s%s\n", pad, formatLabel(d))
	}
}

// formatLabel dims a leading "label:" such as "toml:" or "tool:".
func formatLabel(s string) string {
	label, rest, found := strings.Cut(s, ": ")
	if !found || strings.ContainsAny(label, " /") {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
