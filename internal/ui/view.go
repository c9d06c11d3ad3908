package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

var tracer = otel.Tracer("github.com/GeorgeW-alt2/sigil/internal/ui")

// View owns the widgets of the main window and routes the Generate
// button through the generator.
type View struct {
	gen *generator.Generator

	countEntry *widget.Entry
	minEntry   *widget.Entry
	maxEntry   *widget.Entry
	notice     *widget.Label
	output     *widget.Label
}

// NewView builds the widget tree for a generator. The entry fields start
// with a small default batch so the first click produces output.
func NewView(gen *generator.Generator) *View {
	v := &View{
		gen:        gen,
		countEntry: widget.NewEntry(),
		minEntry:   widget.NewEntry(),
		maxEntry:   widget.NewEntry(),
		notice:     widget.NewLabel(""),
		output:     widget.NewLabel(""),
	}
	v.countEntry.SetText("10")
	v.minEntry.SetText("1")
	v.maxEntry.SetText("4")
	v.output.Wrapping = fyne.TextWrapWord
	return v
}

// Content assembles the control row and the two tabs.
func (v *View) Content() fyne.CanvasObject {
	generate := widget.NewButton("Generate Symbols", v.generate)
	controls := container.NewHBox(
		widget.NewLabel("Batch size:"),
		container.NewGridWrap(fyne.NewSize(entryMinWidth, generate.MinSize().Height), v.countEntry),
		widget.NewLabel("Min length:"),
		container.NewGridWrap(fyne.NewSize(entryMinWidth, generate.MinSize().Height), v.minEntry),
		widget.NewLabel("Max length:"),
		container.NewGridWrap(fyne.NewSize(entryMinWidth, generate.MinSize().Height), v.maxEntry),
		generate,
	)

	generated := container.NewBorder(v.notice, nil, nil, nil, container.NewVScroll(v.output))

	catalogLabel := widget.NewLabel(CatalogText(v.gen.Catalog()))
	catalogLabel.TextStyle = fyne.TextStyle{Monospace: true}
	available := container.NewVScroll(catalogLabel)

	tabs := container.NewAppTabs(
		container.NewTabItem("Generated Symbols", generated),
		container.NewTabItem("Available Symbols", available),
	)
	return container.NewBorder(controls, nil, nil, nil, tabs)
}

func (v *View) generate() {
	in, err := ParseBatchInput(v.countEntry.Text, v.minEntry.Text, v.maxEntry.Text)
	if err != nil {
		v.notice.SetText(err.Error())
		v.output.SetText("")
		return
	}

	_, span := tracer.Start(context.Background(), "ui.generate")
	defer span.End()

	res, err := v.gen.GenerateBatch(generator.BatchRequest{
		Count:     in.Count,
		MinLength: in.MinLength,
		MaxLength: in.MaxLength,
	})
	if err != nil {
		v.notice.SetText(err.Error())
		v.output.SetText("")
		return
	}

	var notes []string
	if in.Swapped {
		notes = append(notes, "Length bounds were inverted and have been swapped.")
	}
	if len(res.Symbols) < in.Count {
		notes = append(notes, fmt.Sprintf("Delivered %d of %d requested symbols.", len(res.Symbols), in.Count))
	}
	v.notice.SetText(strings.Join(notes, " "))
	v.output.SetText(FormatBatch(res.Symbols))

	span.SetAttributes(
		attribute.Int("sigil.requested", in.Count),
		attribute.Int("sigil.delivered", len(res.Symbols)),
		attribute.Int("sigil.attempts", res.Attempts),
	)
	log.Printf("generated %d/%d symbols in %d attempts", len(res.Symbols), in.Count, res.Attempts)
}

// FormatBatch renders symbols as a numbered list, one per line.
func FormatBatch(symbols []string) string {
	var b strings.Builder
	for i, s := range symbols {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CatalogText renders the full vocabulary grouped by category, each glyph
// annotated with its Unicode name.
func CatalogText(c *symbol.Catalog) string {
	var b strings.Builder
	for _, cat := range c.Categories() {
		fmt.Fprintf(&b, "%s — %s\n", cat.Key, cat.Description)
		for _, glyph := range cat.Symbols {
			name := symbol.Name(glyph)
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(&b, "  %s  %s\n", glyph, name)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
