package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	wroteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

var statusStyles = map[string]lipgloss.Style{
	"passed":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"failed":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"skipped":   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"pending":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"undefined": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

func WroteLine(w io.Writer, uri, dest string) {
	fmt.Fprintln(w, wroteStyle.Render("json")+"  "+uri+" -> "+dest)
}

func ArchivedLine(w io.Writer, id int64, uri string) {
	fmt.Fprintln(w, faintStyle.Render("arc")+fmt.Sprintf("   #%d %s", id, uri))
}

func FailLine(w io.Writer, uri string, err error) {
	fmt.Fprintln(w, failStyle.Render("fail")+"  "+uri+": "+err.Error())
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "wrote %d reports\n", count)
}

func ListRow(w io.Writer, id int64, uri, name string, createdAt time.Time, idWidth, uriWidth, nameWidth int) {
	tag := fmt.Sprintf("#%d", id)
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
		idWidth, tag,
		uriWidth, uri,
		nameWidth, name,
		faintStyle.Render(createdAt.Format(time.DateTime)))
}

func ShowHeader(w io.Writer, id int64, uri, name string) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("#%d  %s", id, name))+"  "+faintStyle.Render(uri))
}

func StatusCount(w io.Writer, status string, count int) {
	style, ok := statusStyles[status]
	if !ok {
		style = faintStyle
	}
	fmt.Fprintf(w, "  %s: %d\n", style.Render(status), count)
}
