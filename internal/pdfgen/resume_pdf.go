package pdfgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
)

// Section is one titled block of resume content
type Section struct {
	Title string
	Lines []string
}

// Layout is the fully resolved document content before rendering. Building
// it is pure, so tests can assert on content without parsing PDF output.
type Layout struct {
	Name     string
	Headline string
	Contact  string
	Sections []Section
}

// Build turns a stored resume into a render-ready layout. Empty sections
// are dropped rather than rendered as bare headings.
func Build(resume *models.Resume) *Layout {
	layout := &Layout{
		Name:     resume.FullName,
		Headline: resume.Headline,
		Contact:  contactLine(resume),
	}

	if resume.Summary != "" {
		layout.Sections = append(layout.Sections, Section{
			Title: "Summary",
			Lines: []string{resume.Summary},
		})
	}
	if resume.Education != "" {
		layout.Sections = append(layout.Sections, Section{
			Title: "Education",
			Lines: []string{resume.Education},
		})
	}

	appendListSection(layout, "Skills", resume.Skills)
	appendListSection(layout, "Projects", resume.Projects)
	appendListSection(layout, "Achievements", resume.Achievements)
	appendListSection(layout, "Certifications", resume.Certifications)

	return layout
}

func appendListSection(layout *Layout, title string, items models.StringList) {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		lines = append(lines, "• "+item)
	}
	if len(lines) == 0 {
		return
	}

	layout.Sections = append(layout.Sections, Section{Title: title, Lines: lines})
}

func contactLine(resume *models.Resume) string {
	parts := make([]string, 0, 2)
	if resume.Email != "" {
		parts = append(parts, resume.Email)
	}
	if resume.Phone != "" {
		parts = append(parts, resume.Phone)
	}
	return strings.Join(parts, "  |  ")
}

// Render writes the layout as an A4 PDF
func Render(layout *Layout, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, layout.Name, "", 1, "L", false, 0, "")

	if layout.Headline != "" {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 7, layout.Headline, "", 1, "L", false, 0, "")
	}

	if layout.Contact != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 6, layout.Contact, "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, section := range layout.Sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, section.Title, "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range section.Lines {
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render resume PDF: %w", err)
	}
	return nil
}
