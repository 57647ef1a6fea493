package cli

import (
	"fmt"

	"github.com/diillson/prepaid-meter-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$                                          /$$       /$$
        | $$__  $$                                        |__/      | $$
        | $$  \ $$ /$$$$$$   /$$$$$$   /$$$$$$   /$$$$$$   /$$  /$$$$$$$
        | $$$$$$$//$$__  $$ /$$__  $$ /$$__  $$ |____  $$ | $$ /$$__  $$
        | $$____/| $$  \__/| $$$$$$$$| $$  \ $$  /$$$$$$$ | $$| $$  | $$
        | $$     | $$      | $$_____/| $$  | $$ /$$__  $$ | $$| $$  | $$
        | $$     | $$      |  $$$$$$$| $$$$$$$/|  $$$$$$$ | $$|  $$$$$$$
        |__/     |__/       \_______/| $$____/  \_______/ |__/ \_______/
                                     | $$
                                     | $$
                                     |__/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Prepaid Meter Dashboard CLI (v%s)", formattedVersion)))
}
