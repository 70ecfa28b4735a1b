package report

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the CLI banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-green gradient
	s1 := termenv.String("  ____      ___       _              ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String(" |  _ \\ ___|_ _|_ __ | |_ _ __ ___   ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" | |_) / _ \\| || '_ \\| __| '__/ _ \\  ").Foreground(p.Color("#4ade80"))
	s4 := termenv.String(" |  _ <  __/| || | | | |_| | | (_) | ").Foreground(p.Color("#a3e635"))
	s5 := termenv.String(" |_| \\_\\___|___|_| |_|\\__|_|  \\___/  ").Foreground(p.Color("#facc15"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
