package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/homedash/homedash/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	cardStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	expiryStyles = map[ExpiryStatus]lipgloss.Style{
		ExpiryExpired:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ExpiryExpiringSoon: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ExpiryActive:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// TerminalRenderer draws the dashboard for a terminal, grouping amounts by the
// conventions of its language.
type TerminalRenderer struct {
	printer *message.Printer
}

func NewTerminalRenderer(lang language.Tag) *TerminalRenderer {
	return &TerminalRenderer{printer: message.NewPrinter(lang)}
}

func (t *TerminalRenderer) RenderSummary(summary Summary) (string, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Home dashboard"))
	sb.WriteString(" ")
	sb.WriteString(faintStyle.Render(utils.FormatDate(summary.GeneratedAt)))
	sb.WriteString("\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Upcoming Tasks\n%d", summary.UpcomingTaskCount)),
		cardStyle.Render("Monthly Expenses\n"+t.amount(summary.MonthlyExpenses)),
		cardStyle.Render(fmt.Sprintf("Due Soon\n%d", len(summary.BillsDueSoon))),
	)
	sb.WriteString(cards)
	sb.WriteString("\n")

	sb.WriteString(headingStyle.Render("Upcoming Tasks"))
	sb.WriteString("\n")
	if len(summary.UpcomingTasks) == 0 {
		sb.WriteString(faintStyle.Render("  nothing scheduled") + "\n")
	}
	for _, task := range summary.UpcomingTasks {
		fmt.Fprintf(&sb, "  %s  %s %s\n", utils.FormatDate(task.Date), task.Title, faintStyle.Render("["+string(task.Type)+"]"))
	}

	sb.WriteString(headingStyle.Render("Recent Expenses"))
	sb.WriteString("\n")
	for _, expense := range summary.RecentExpenses {
		fmt.Fprintf(&sb, "  %s  %-24s %12s\n", utils.FormatDate(expense.Date), expense.Title, t.amount(expense.Amount))
	}

	if len(summary.BillsDueSoon) > 0 {
		sb.WriteString(headingStyle.Render("Bills Due Soon"))
		sb.WriteString("\n")
		for _, bill := range summary.BillsDueSoon {
			fmt.Fprintf(&sb, "  %s  %-24s %12s\n", utils.FormatDate(bill.DueDate), bill.Name, t.amount(bill.Amount))
		}
	}

	sb.WriteString(headingStyle.Render("Warranties"))
	sb.WriteString("\n")
	for _, w := range summary.Warranties {
		status := expiryStyles[w.Status].Render(string(w.Status))
		fmt.Fprintf(&sb, "  %-24s %s %s\n", w.Warranty.Item, status,
			faintStyle.Render(t.printer.Sprintf("(%d days)", w.DaysUntilExpiry)))
	}

	return sb.String(), nil
}

func (t *TerminalRenderer) amount(value decimal.Decimal) string {
	return t.printer.Sprintf("$%.2f", value.Round(2).InexactFloat64())
}
