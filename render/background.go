package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/yaoapp/kun/log"
)

// backgroundDesc places the background page unscaled and upright
const backgroundDesc = "scalefactor:1 abs, rotation:0"

func init() {
	api.DisableConfigDir()
}

// Composite writes the document read from rs to w with the background PDF
// under every page. A two-page background puts page 1 under the odd (left)
// pages and page 2 under the even (right) pages.
func Composite(rs io.ReadSeeker, w io.Writer, background string) error {
	conf := model.NewDefaultConfiguration()

	n, err := api.PageCountFile(background)
	if err != nil {
		return fmt.Errorf("background %s: %w", background, err)
	}

	left, err := api.PDFWatermark(background+":1", backgroundDesc, false, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("background %s: %w", background, err)
	}

	if n < 2 {
		log.Trace("[render] background %s page 1 under all pages", background)
		return api.AddWatermarks(rs, w, nil, left, conf)
	}

	right, err := api.PDFWatermark(background+":2", backgroundDesc, false, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("background %s: %w", background, err)
	}

	log.Trace("[render] background %s pages 1/2 under odd/even pages", background)
	buf := &bytes.Buffer{}
	if err := api.AddWatermarks(rs, buf, []string{"odd"}, left, conf); err != nil {
		return err
	}
	return api.AddWatermarks(bytes.NewReader(buf.Bytes()), w, []string{"even"}, right, conf)
}
