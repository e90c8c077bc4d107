// Package tui renders assessments for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/voltcheck/voltcheck/internal/adapters/outbound/history"
	"github.com/voltcheck/voltcheck/internal/application"
	"github.com/voltcheck/voltcheck/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	verdictColors = map[string]lipgloss.Color{
		application.VerdictApproved: success,
		application.VerdictReview:   warning,
		application.VerdictRejected: danger,
	}

	dimStyle         = lipgloss.NewStyle().Foreground(dim)
	faintStyle       = lipgloss.NewStyle().Foreground(faint)
	passStyle        = lipgloss.NewStyle().Foreground(success)
	criticalTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	majorTagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FB923C")).Bold(true)
	minorTagStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle     = lipgloss.NewStyle().Foreground(info)
	pathStyle        = lipgloss.NewStyle().Foreground(dim)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine    = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderAssessment formats a full assessment: verdict box, compliance
// bar, and the findings that need a human's eyes (informational ones
// are summarized, not listed).
func RenderAssessment(a *application.Assessment) string {
	var b strings.Builder

	title := headerStyle.Render("voltcheck")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s profile", a.Result.TestType, a.Profile))
	scoreLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(a.Verdict)).
		Render(fmt.Sprintf("%.2f / 100", a.ComplianceScore))
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(a.Verdict)).
		Render(a.Verdict)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreLine + "  " + verdictStyled))
	b.WriteString("\n\n")

	if a.Result.EquipmentTag != "" {
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Equipment"), dimStyle.Render(a.Result.EquipmentTag))
	}
	fmt.Fprintf(&b, "  %s %s  %s\n",
		titleStyle.Render("Compliance"),
		coloredBar(a.ComplianceScore, 20),
		dimStyle.Render(fmt.Sprintf("confidence %.2f", a.Confidence)),
	)
	b.WriteString("\n  " + separatorLine + "\n\n")

	deviations := countDeviations(a.Result)
	if deviations == 0 {
		fmt.Fprintf(&b, "  %s %s\n",
			passStyle.Render("No deviations found."),
			dimStyle.Render(fmt.Sprintf("(%d checks recorded)", a.Result.InfoCount)),
		)
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render("Findings") + "  ")
	if a.Result.CriticalCount > 0 {
		b.WriteString(criticalTagStyle.Render(fmt.Sprintf("%d critical", a.Result.CriticalCount)) + "  ")
	}
	if a.Result.MajorCount > 0 {
		b.WriteString(majorTagStyle.Render(fmt.Sprintf("%d major", a.Result.MajorCount)) + "  ")
	}
	if a.Result.MinorCount > 0 {
		b.WriteString(minorTagStyle.Render(fmt.Sprintf("%d minor", a.Result.MinorCount)) + "  ")
	}
	b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", a.Result.InfoCount)))
	b.WriteString("\n\n")

	for _, f := range a.Result.Findings {
		if f.Severity == domain.SeverityInfo {
			continue
		}
		renderFinding(&b, f)
	}

	b.WriteString("\n")
	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	fmt.Fprintf(b, "    %s %s %s\n",
		severityTag(f.Severity),
		faintStyle.Render(f.RuleID),
		pathStyle.Render(HumanizePath(f.FieldPath)),
	)
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(f.Message))
	if f.Threshold != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render("threshold "+f.Threshold))
	}
	if f.StandardRef.Standard != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render(f.StandardRef.Standard+" "+f.StandardRef.Section))
	}
	if f.Remediation != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render("→ "+f.Remediation))
	}
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return criticalTagStyle.Render("crit ")
	case domain.SeverityMajor:
		return majorTagStyle.Render("major")
	case domain.SeverityMinor:
		return minorTagStyle.Render("minor")
	default:
		return infoTagStyle.Render("info ")
	}
}

func countDeviations(r *domain.ValidationResult) int {
	return r.CriticalCount + r.MajorCount + r.MinorCount
}

func coloredBar(score float64, width int) string {
	filled := int(score) * width / 100
	filled = max(0, min(filled, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 95:
		return success
	case score >= 75:
		return warning
	default:
		return danger
	}
}

func verdictColor(verdict string) lipgloss.Color {
	if c, ok := verdictColors[verdict]; ok {
		return c
	}
	return fg
}

// HumanizePath turns a JSON field path into readable words:
// "megger.circuits[0].irOneMin" becomes
// "megger › circuits[0] › ir one min".
func HumanizePath(path string) string {
	if path == "" {
		return ""
	}
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		suffix := ""
		if idx := strings.Index(seg, "["); idx >= 0 {
			suffix = seg[idx:]
			seg = seg[:idx]
		}
		words := camelcase.Split(seg)
		for j, w := range words {
			words[j] = strings.ToLower(w)
		}
		segments[i] = strings.Join(words, " ") + suffix
	}
	return strings.Join(segments, " › ")
}

// RenderHistory formats the verdict history for terminal output.
func RenderHistory(entries []history.Entry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No verdict history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Verdict History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.ComplianceScore)).
			Render(fmt.Sprintf("%.2f", e.ComplianceScore))

		verdictStyled := lipgloss.NewStyle().
			Foreground(verdictColor(e.Verdict)).
			Render(e.Verdict)

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			dimStyle.Render(e.EquipmentTag),
			scoreStyled,
			verdictStyled,
		)
	}

	return b.String()
}
