package parser

import (
	"testing"
)

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"worksheets/sheet2.xml", "xl", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestRelsPath(t *testing.T) {
	tests := map[string]string{
		"xl/workbook.xml":          "xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml": "xl/worksheets/_rels/sheet1.xml.rels",
		"xl/drawings/drawing2.xml": "xl/drawings/_rels/drawing2.xml.rels",
	}

	for part, expected := range tests {
		if got := relsPath(part); got != expected {
			t.Errorf("relsPath(%q) = %q, expected %q", part, got, expected)
		}
	}
}

func TestEMUToPixels(t *testing.T) {
	if got := EMUToPixels(914400); got != 96 {
		t.Errorf("EMUToPixels(914400) = %d, expected 96", got)
	}
	if got := EMUToPixels(0); got != 0 {
		t.Errorf("EMUToPixels(0) = %d, expected 0", got)
	}
}

func TestParseRelationships(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`)

	rels := parseRelationships(data)
	if len(rels) != 2 {
		t.Fatalf("expected 2 relationships, got %d", len(rels))
	}
	if rels[1].ID != "rId2" || rels[1].Target != "../drawings/drawing1.xml" {
		t.Errorf("unexpected relationship: %+v", rels[1])
	}

	drawings := relationshipsOfType(rels, "drawing")
	if len(drawings) != 1 || drawings[0].ID != "rId2" {
		t.Errorf("relationshipsOfType(drawing) = %+v", drawings)
	}
}
