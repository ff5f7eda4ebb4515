package cmd

import "github.com/fatih/color"

var (
	colorWarn  = color.New(color.FgYellow).SprintFunc()
	colorError = color.New(color.FgRed).SprintFunc()
)
