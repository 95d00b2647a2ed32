package cli

import (
	"fmt"

	"github.com/diillson/credit-review-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$                            /$$ /$$   /$$
        /$$__  $$                          | $$|__/  | $$
       | $$  \__/  /$$$$$$   /$$$$$$   /$$$$$$$ /$$ /$$$$$$
       | $$       /$$__  $$ /$$__  $$ /$$__  $$| $$|_  $$_/
       | $$      | $$  \__/| $$$$$$$$| $$  | $$| $$  | $$
       | $$    $$| $$      | $$_____/| $$  | $$| $$  | $$ /$$
       |  $$$$$$/| $$      |  $$$$$$$|  $$$$$$$| $$  |  $$$$/
        \______/ |__/       \_______/ \_______/|__/   \___/
                 /$$$$$$$                      /$$
                | $$__  $$                    |__/
                | $$  \ $$  /$$$$$$  /$$    /$$/$$  /$$$$$$  /$$  /$$  /$$
                | $$$$$$$/ /$$__  $$|  $$  /$$/ $$ /$$__  $$| $$ | $$ | $$
                | $$__  $$| $$$$$$$$ \  $$/$$/| $$| $$$$$$$$| $$ | $$ | $$
                | $$  \ $$| $$_____/  \  $$$/ | $$| $$_____/| $$ | $$ | $$
                | $$  | $$|  $$$$$$$   \  $/  | $$|  $$$$$$$|  $$$$$/$$$$/
                |__/  |__/ \_______/    \_/   |__/ \_______/ \_____/\___/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Credit Utilization Review Dashboard CLI (v%s)", formattedVersion)))
}
