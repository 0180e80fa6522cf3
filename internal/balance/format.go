package balance

import (
	"fmt"
	"strings"

	"teambalancer/internal/domain"
)

// FormatComposition renders a role-by-role breakdown of both sides with
// their scores and balance metrics, for whatever surface displays it.
func FormatComposition(c Composition) string {
	var b strings.Builder
	writeSide(&b, "RED TEAM", c.Red, c.RedScore)
	b.WriteString("\n")
	writeSide(&b, "BLUE TEAM", c.Blue, c.BlueScore)
	b.WriteString("\nMETRICS\n")
	fmt.Fprintf(&b, "T-Value (team score difference): %.2f\n", c.TValue)
	fmt.Fprintf(&b, "L-Value (lane difference RMS): %.2f\n", c.LValue)
	return b.String()
}

func writeSide(b *strings.Builder, title string, a Assignment, score float64) {
	b.WriteString(title)
	b.WriteString("\n")
	fmt.Fprintf(b, "Team Score: %.2f\n", score)
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")
	for slot, role := range domain.Roles {
		p := a[slot]
		fmt.Fprintf(b, "%s: %s (%s, %s)\n", strings.ToUpper(role.String()), p.Name, p.Rank, p.Region)
		fmt.Fprintf(b, "  Preference: %s\n", p.Preference)
		fmt.Fprintf(b, "  Shot caller: %v\n", p.ShotCaller)
	}
}
