package extractor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DOCX and PPTX are both OOXML zip archives; the text lives in XML
// members (word/document.xml, ppt/slides/slideN.xml). Streaming the
// XML tokens and collecting the text runs is all that is needed here.

var slideNameRE = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractDOCX concatenates paragraph text in document order,
// newline-separated.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return docxParagraphs(rc)
	}
	return "", fmt.Errorf("docx archive has no word/document.xml")
}

// docxParagraphs walks the document XML, gathering w:t runs and
// breaking on w:p boundaries.
func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inRun      bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// extractPPTX concatenates every text-bearing shape's text across all
// slides, in slide then shape order, newline-separated. Shapes without
// text are skipped.
func extractPPTX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := slideNameRE.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: n, file: f})
	}
	// Zip member order is not slide order.
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var shapes []string
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return "", err
		}
		slideShapes, err := slideShapeTexts(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		shapes = append(shapes, slideShapes...)
	}
	return strings.Join(shapes, "\n"), nil
}

// slideShapeTexts returns the text of each text-bearing shape on one
// slide. A shape's text is its a:p paragraphs (a:t runs) joined by
// newlines, mirroring how presentation tools render text frames.
func slideShapeTexts(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		shapes     []string
		paragraphs []string
		current    strings.Builder
		inTxBody   bool
		inRun      bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inTxBody = true
				paragraphs = nil
			case "t":
				if inTxBody {
					inRun = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if inTxBody {
					paragraphs = append(paragraphs, current.String())
					current.Reset()
				}
			case "txBody":
				inTxBody = false
				text := strings.Join(paragraphs, "\n")
				if strings.TrimSpace(text) != "" {
					shapes = append(shapes, text)
				}
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	return shapes, nil
}
