// Command fontinspect prints the metrics, names and derived classification
// of a single font file, for eyeballing what the sfnt package extracted
// from it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/AuburnSounds/printed/sfnt"
)

func main() {
	index := flag.Int("index", 0, "font index within a collection (.ttc/.otc)")
	validate := flag.Bool("validate", false, "verify table checksums before inspecting")
	flag.Parse()

	if flag.NArg() != 1 {
		pterm.Error.Println("usage: fontinspect [-index N] [-validate] <font-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Printf("reading %q: %v\n", path, err)
		os.Exit(1)
	}

	if *validate {
		if err := sfnt.Validate(data, *index); err != nil {
			pterm.Error.Printf("validation failed: %v\n", err)
			os.Exit(1)
		}
		pterm.Success.Println("checksums OK")
	}

	container, err := sfnt.OpenContainer(data)
	if err != nil {
		pterm.Error.Printf("opening %q: %v\n", path, err)
		os.Exit(1)
	}
	pterm.Info.Printf("%s: collection=%v fonts=%d\n", path, container.IsCollection(), container.NumFonts())

	dir, err := container.Directory(*index)
	if err != nil {
		pterm.Error.Printf("reading directory for index %d: %v\n", *index, err)
		os.Exit(1)
	}

	face := sfnt.NewFace(dir)
	classification, err := face.Classification()
	if err != nil {
		pterm.Error.Printf("parsing font: %v\n", err)
		os.Exit(1)
	}

	unitsPerEm, _ := face.UnitsPerEm()
	ascent, _ := face.Ascent()
	descent, _ := face.Descent()
	lineGap, _ := face.LineGap()
	numGlyphs, _ := face.NumGlyphs()
	italicAngle, _ := face.ItalicAngleDegrees()

	data2 := [][]string{
		{"Field", "Value"},
		{"Family", face.FamilyName()},
		{"Sub-family", face.SubFamilyName()},
		{"Full name", face.FullName()},
		{"PostScript name", face.PostScriptName()},
		{"Weight", fmt.Sprintf("%d", classification.Weight)},
		{"Style", classification.Style.String()},
		{"Monospaced", fmt.Sprintf("%v", classification.IsMonospaced)},
		{"Units per em", fmt.Sprintf("%d", unitsPerEm)},
		{"Ascent", fmt.Sprintf("%d", ascent)},
		{"Descent", fmt.Sprintf("%d", descent)},
		{"Line gap", fmt.Sprintf("%d", lineGap)},
		{"Glyph count", fmt.Sprintf("%d", numGlyphs)},
		{"Italic angle", fmt.Sprintf("%.2f°", italicAngle)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data2).Render()
}
