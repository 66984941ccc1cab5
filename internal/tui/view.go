package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the scenario list and the selected breakdown side by side.
func (m Model) View() string {
	var body string
	switch {
	case m.err != nil:
		body = ErrorStyle.Render("error: " + m.err.Error())
	case m.loading:
		body = HelpStyle.Render("calculating scenarios...")
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewScenarioList(),
			"  ",
			m.viewDetails(),
		)
	}

	help := HelpStyle.Render("↑/k up · ↓/j down · r recalculate · q quit")

	return AppStyle.Render(
		TitleStyle.Render("Tax Scenario Browser") + "\n\n" + body + "\n\n" + help,
	)
}

func (m Model) viewScenarioList() string {
	var sb strings.Builder
	for i, r := range m.results() {
		label := r.Name
		if i == 0 {
			label += " (base)"
		}
		if i == m.cursor {
			sb.WriteString(SelectedItemStyle.Render("> " + label))
		} else {
			sb.WriteString(UnselectedItemStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}
	return PanelStyle.Render(sb.String())
}

func (m Model) viewDetails() string {
	results := m.results()
	if len(results) == 0 {
		return ""
	}
	r := results[m.cursor]

	var sb strings.Builder
	writeMetric(&sb, "Taxable income", r.Federal.TaxableIncome, MetricValueStyle)
	writeMetric(&sb, "Regular tax", r.Federal.RegularTax, MetricValueStyle)
	writeMetric(&sb, "AMT add-on", r.Federal.AMTAddOn, MetricValueStyle)
	writeMetric(&sb, "QBI deduction", r.Federal.QBIDeduction, MetricValueStyle)
	writeMetric(&sb, "Federal liability", r.Federal.FinalLiability, MetricValueStyle)
	if r.State != nil {
		writeMetric(&sb, "State tax ("+r.State.State+")", r.State.TotalTax, MetricValueStyle)
	}
	writeMetric(&sb, "Total tax", r.TotalTax, MetricValueStyle)
	sb.WriteString(MetricLabelStyle.Render("Effective rate") +
		MetricValueStyle.Render(r.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%") + "\n")

	if m.cursor > 0 {
		style := MetricNegativeStyle
		if r.TotalTaxDiff.IsNegative() {
			style = MetricPositiveStyle
		}
		writeMetric(&sb, "Δ vs base", r.TotalTaxDiff, style)
	}

	return PanelStyle.Render(sb.String())
}

func writeMetric(sb *strings.Builder, label string, amount decimal.Decimal, style lipgloss.Style) {
	sb.WriteString(MetricLabelStyle.Render(label) + style.Render(formatUSD(amount)) + "\n")
}

func formatUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return fmt.Sprintf("-$%s", d.Abs().StringFixed(2))
	}
	return "$" + d.StringFixed(2)
}
