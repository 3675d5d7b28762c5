package commands

import (
	"fmt"
	"strings"

	"github.com/pivotal-cf/passgen/strength"
)

func runAnalyze(password string) error {
	report := strength.Analyze(password)

	fmt.Printf("\nPassword Analysis for: %s\n", strings.Repeat("*", report.Length))
	fmt.Printf("Length: %d\n", report.Length)
	fmt.Printf("Strength: %s\n", colorizeLabel(report.Strength))
	fmt.Printf("Score: %d/100\n", report.Score)

	if len(report.Feedback) > 0 {
		fmt.Println()
		fmt.Println("Suggestions for improvement:")
		for _, suggestion := range report.Feedback {
			fmt.Printf("  - %s\n", suggestion)
		}
	}

	fmt.Println()
	fmt.Println("Character types present:")
	fmt.Printf("  - Lowercase: %s\n", mark(report.HasLowercase))
	fmt.Printf("  - Uppercase: %s\n", mark(report.HasUppercase))
	fmt.Printf("  - Digits: %s\n", mark(report.HasDigits))
	fmt.Printf("  - Symbols: %s\n", mark(report.HasSymbols))

	return nil
}

func colorizeLabel(label string) string {
	switch label {
	case strength.VeryStrong, strength.Strong:
		return green(label)
	case strength.Moderate:
		return yellow(label)
	}

	return red(label)
}

func mark(present bool) string {
	if present {
		return green("yes")
	}

	return red("no")
}
