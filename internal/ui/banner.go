// Terminal presentation: startup banner and the end-of-run summary table.

package ui

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"go-jobradar/internal/deliver"
)

const bannerText = `
     ██╗ ██████╗ ██████╗ ██████╗  █████╗ ██████╗  █████╗ ██████╗
     ██║██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗
     ██║██║   ██║██████╔╝██████╔╝███████║██║  ██║███████║██████╔╝
██   ██║██║   ██║██╔══██╗██╔══██╗██╔══██║██║  ██║██╔══██║██╔══██╗
╚█████╔╝╚██████╔╝██████╔╝██║  ██║██║  ██║██████╔╝██║  ██║██║  ██║
 ╚════╝  ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝
`

// PrintBanner displays the application banner unless silenced.
func PrintBanner(silence bool) {
	if silence {
		return
	}
	fmt.Println(pterm.LightCyan(bannerText))
}

// PrintRunSummary renders the run's numbers as a small table. Rendering
// problems are swallowed; the summary is cosmetic.
func PrintRunSummary(s deliver.RunSummary) {
	data := pterm.TableData{
		{"Collected", strconv.Itoa(s.Collected)},
		{"Kept after filters", strconv.Itoa(s.Kept)},
		{"Clean rows", strconv.Itoa(s.CleanRows)},
		{"Audit rows", strconv.Itoa(s.AuditRows)},
		{"Queries used today", fmt.Sprintf("%d/%d", s.QueriesUsed, s.QuotaCap)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}
