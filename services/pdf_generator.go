package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"case_desk_app_go/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFOptions contains options for PDF generation
type PDFOptions struct {
	ChromePath      string // headless Chrome binary, empty for the default lookup
	PageOrientation string // portrait, landscape
	PageSize        string // letter, legal, A4
	MarginInches    float64
}

// DefaultPDFOptions returns the options used for the docket
func DefaultPDFOptions(chromePath string) PDFOptions {
	return PDFOptions{
		ChromePath:      chromePath,
		PageOrientation: "landscape",
		PageSize:        "letter",
		MarginInches:    0.5,
	}
}

var docketTemplate = template.Must(template.New("docket").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string { return t.Format("Mon, Jan 2, 2006 15:04") },
	"deref":    models.Deref,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: "Times New Roman", Times, serif; font-size: 11pt; color: #000; }
h1 { font-size: 16pt; text-align: center; margin-bottom: 4pt; }
p.generated { text-align: center; font-size: 9pt; margin-top: 0; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #444; padding: 4pt 6pt; text-align: left; vertical-align: top; }
th { background: #eee; }
td.priority-urgent { font-weight: bold; color: #b91c1c; }
td.priority-high { font-weight: bold; }
</style>
</head>
<body>
<h1>Upcoming Court Docket</h1>
<p class="generated">Generated {{ datetime .GeneratedAt }}</p>
{{ if .Dates }}
<table>
<thead><tr><th>Date</th><th>Case</th><th>Hearing</th><th>Court</th><th>Judge</th><th>Priority</th></tr></thead>
<tbody>
{{ range .Dates }}
<tr>
<td>{{ datetime .Date }}</td>
<td>{{ if .CaseNumber }}{{ .CaseNumber }} - {{ .CaseTitle }}{{ else }}Unknown Case{{ end }}</td>
<td>{{ .HearingType }}</td>
<td>{{ .CourtName }}</td>
<td>{{ deref .JudgeName }}</td>
<td class="priority-{{ .Priority }}">{{ .Priority }}</td>
</tr>
{{ end }}
</tbody>
</table>
{{ else }}
<p>No court dates scheduled in the next 30 days.</p>
{{ end }}
</body>
</html>`))

// BuildDocketHTML renders the upcoming court dates as a printable page
func BuildDocketHTML(dates []models.UpcomingCourtDate, generatedAt time.Time) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Dates       []models.UpcomingCourtDate
		GeneratedAt time.Time
	}{dates, generatedAt}
	if err := docketTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render docket: %w", err)
	}
	return buf.String(), nil
}

// GenerateDocketPDF renders the docket and prints it with headless Chrome
func GenerateDocketPDF(ctx context.Context, dates []models.UpcomingCourtDate, generatedAt time.Time, options PDFOptions) ([]byte, error) {
	html, err := BuildDocketHTML(dates, generatedAt)
	if err != nil {
		return nil, err
	}
	return GeneratePDF(ctx, html, options)
}

// GeneratePDF renders HTML content to PDF using headless Chrome
func GeneratePDF(ctx context.Context, htmlContent string, options PDFOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	// Custom Chrome path (for headless-shell in Docker)
	if options.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(options.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	paperWidth, paperHeight := paperSize(options.PageSize)
	if options.PageOrientation == "landscape" {
		paperWidth, paperHeight = paperHeight, paperWidth
	}

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(options.MarginInches).
				WithMarginBottom(options.MarginInches).
				WithMarginLeft(options.MarginInches).
				WithMarginRight(options.MarginInches).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// paperSize returns width and height in inches
func paperSize(size string) (float64, float64) {
	switch size {
	case "legal":
		return 8.5, 14.0
	case "A4":
		return 8.27, 11.69
	default: // letter
		return 8.5, 11.0
	}
}
