package cli

import (
	"fmt"
	"io"
)

// Output helpers keep icon usage consistent across commands.
//
//	✓  success
//	⚠  warning
//	~  neutral info

func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}

func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ~  %s\n", msg)
}
