package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"adapter-customizer/internal/diagnostic"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// printDiagnostics writes errors and warnings, and infos when verbose.
func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics, verbose bool) {
	for _, e := range d.Errors {
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, e.String())
	}

	for _, e := range d.Warnings {
		warningColor.Fprint(w, "warning: ")
		fmt.Fprintln(w, e.String())
	}

	if !verbose {
		return
	}

	for _, e := range d.Infos {
		infoColor.Fprint(w, "info: ")
		fmt.Fprintln(w, e.String())
	}
}
