package docgen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// BuildPDF assembles a captured raster into a portrait A4 document in
// millimeter units. The image fills the page width; height follows the
// source aspect ratio, spilling onto extra pages when it exceeds one.
func BuildPDF(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("docgen: empty capture")
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("docgen: encode capture: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pageW, pageH := pdf.GetPageSize()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, &encoded)

	imgW := pageW
	imgH := imgW * float64(bounds.Dy()) / float64(bounds.Dx())

	// Draw the full image on the first page, then redraw it shifted up
	// one page height per overflow page.
	y := 0.0
	remaining := imgH
	pdf.AddPage()
	pdf.ImageOptions("capture", 0, y, imgW, imgH, false, opts, 0, "")
	remaining -= pageH
	for remaining > 0 {
		y -= pageH
		pdf.AddPage()
		pdf.ImageOptions("capture", 0, y, imgW, imgH, false, opts, 0, "")
		remaining -= pageH
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("docgen: assemble pdf: %w", err)
	}
	return out.Bytes(), nil
}
