// Package parser reads survey workbooks and the raw OOXML parts of exported
// reports.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// EMUPerPixel is the number of English Metric Units per pixel at 96 DPI
// (914400 EMU per inch).
const EMUPerPixel = 9525

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// relationship is one entry of a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

// readZipFile returns the content of the named part, or nil when the part
// does not exist.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, nil
}

// relsPath returns the relationships part of a part,
// e.g. xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPath(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// resolveRelativePath resolves a relationship target against the directory
// of the part that owns the relationship.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// walk iterates the children of the element whose start token was just
// read, until its end token. visit is called for every descendant start
// element; it returns true when it consumed the element through its end
// token, false to let walk descend into it.
func walk(d *xml.Decoder, visit func(se xml.StartElement) bool) {
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !visit(t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// walkDocument walks every element of an XML document.
func walkDocument(data []byte, visit func(d *xml.Decoder, se xml.StartElement) bool) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return
		}
		if se, ok := tok.(xml.StartElement); ok {
			if !visit(d, se) {
				walk(d, func(child xml.StartElement) bool { return visit(d, child) })
			}
			return
		}
	}
}

// readElementText returns the raw character data of the current element and
// consumes it through its end token.
func readElementText(d *xml.Decoder) string {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return b.String()
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func attrInt(se xml.StartElement, local string) int64 {
	v, _ := strconv.ParseInt(attr(se, local), 10, 64)
	return v
}

// parseRelationships parses a .rels part.
func parseRelationships(data []byte) []relationship {
	var rels []relationship
	walkDocument(data, func(_ *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local == "Relationship" {
			rels = append(rels, relationship{
				ID:     attr(se, "Id"),
				Type:   attr(se, "Type"),
				Target: attr(se, "Target"),
			})
		}
		return false
	})
	return rels
}

// relationshipsOfType returns the relationships whose type contains kind.
func relationshipsOfType(rels []relationship, kind string) []relationship {
	return lo.Filter(rels, func(r relationship, _ int) bool {
		return strings.Contains(strings.ToLower(r.Type), kind)
	})
}

// sheetRef is a worksheet of the workbook.
type sheetRef struct {
	Name string
	Part string
}

// workbookSheets lists the worksheets in workbook order with their part names.
func workbookSheets(r *zip.Reader) ([]sheetRef, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}
	relsXML, err := readZipFile(r, relsPath("xl/workbook.xml"))
	if err != nil || relsXML == nil {
		return nil, err
	}

	parts := make(map[string]string)
	for _, rel := range relationshipsOfType(parseRelationships(relsXML), "worksheet") {
		parts[rel.ID] = resolveRelativePath(rel.Target, "xl")
	}

	var sheets []sheetRef
	walkDocument(workbookXML, func(_ *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "sheet" {
			return false
		}
		if part, ok := parts[attr(se, "id")]; ok {
			sheets = append(sheets, sheetRef{Name: attr(se, "name"), Part: part})
		}
		return false
	})
	return sheets, nil
}

// parseXfrm reads the offset and extent of an xfrm element in pixels.
func parseXfrm(d *xml.Decoder) (left, top, width, height int) {
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "off":
			left, top = EMUToPixels(attrInt(se, "x")), EMUToPixels(attrInt(se, "y"))
		case "ext":
			width, height = EMUToPixels(attrInt(se, "cx")), EMUToPixels(attrInt(se, "cy"))
		}
		return false
	})
	return
}
