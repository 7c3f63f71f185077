package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Banner returns the startup banner.
func Banner() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Render("WARBLER")
	wing := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(`   \\
  (o>
\\_//)
 \_/_)
  _|_`)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("a small loud client for a small loud network")
	return wing + "  " + title + "\n" + sub + "\n"
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
