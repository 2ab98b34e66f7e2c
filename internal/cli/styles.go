// Package cli holds the terminal presentation shared by the nwav tools.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/nwav"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#A40000")
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Foreground(textColor)
)

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintInfo prints a key/value line
func PrintInfo(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(w io.Writer, title string) {
	fmt.Fprintln(w, HeaderStyle.Render(title))
}

// PrintChunk prints one dump line: the chunk tag followed by its decoded
// content.
func PrintChunk(w io.Writer, desc nwav.ChunkDescriptor, chunk nwav.DecodedChunk) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(desc.Name), ValueStyle.Render(DescribeChunk(chunk)))
}

// DescribeChunk renders a decoded chunk on one line. A nil chunk, which the
// decoder returns for chunk types it does not interpret, renders as "None".
func DescribeChunk(chunk nwav.DecodedChunk) string {
	switch c := chunk.(type) {
	case nil:
		return "None"
	case *nwav.RiffBody:
		return fmt.Sprintf("Riff(%s)", c)
	case *nwav.FmtBody:
		return fmt.Sprintf("Format(%s)", c)
	case *nwav.ListChunk:
		return fmt.Sprintf("List(%s)", c)
	case *nwav.DataChunk:
		return fmt.Sprintf("Data(%s)", c)
	default:
		return fmt.Sprintf("%v", c)
	}
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// PrintMetadata prints every INFO field, empty ones included.
func PrintMetadata(w io.Writer, md *nwav.Metadata) {
	if md == nil {
		md = &nwav.Metadata{}
	}

	fields := []struct {
		key   string
		value string
	}{
		{"Artist", md.Artist},
		{"Title", md.Title},
		{"Comments", md.Comments},
		{"Copyright", md.Copyright},
		{"CreationDate", md.CreationDate},
		{"Engineer", md.Engineer},
		{"Technician", md.Technician},
		{"Genre", md.Genre},
		{"Keywords", md.Keywords},
		{"Medium", md.Medium},
		{"Product", md.Product},
		{"Subject", md.Subject},
		{"Software", md.Software},
		{"Source", md.Source},
		{"Location", md.Location},
		{"TrackNbr", md.TrackNbr},
	}

	for _, f := range fields {
		PrintInfo(w, f.key, f.value)
	}
}

// Usage returns the one-line usage text for a tool taking a file argument.
func Usage(tool string) string {
	return fmt.Sprintf("Usage: %s <file> [flags]", tool)
}
