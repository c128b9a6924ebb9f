// Package painxml renders built pain.001 documents to UTF-8 XML.
package painxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"fjacquet/pain-gen/internal/pain"
	"fjacquet/pain-gen/internal/xmltree"
)

// DefaultIndentWidth is the number of spaces used per nesting level.
const DefaultIndentWidth = 2

// Serializer writes xmltree nodes through the encoding/xml token encoder.
type Serializer struct {
	indent string
}

// NewSerializer returns a Serializer indenting by width spaces per level.
// A width of zero or less produces compact output on a single line.
func NewSerializer(width int) *Serializer {
	if width < 0 {
		width = 0
	}
	return &Serializer{indent: strings.Repeat(" ", width)}
}

// Render returns the document as bytes, starting with the XML declaration.
func (s *Serializer) Render(doc pain.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, doc.Tree()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes root to w, preceded by the XML declaration and followed by a
// trailing newline.
func (s *Serializer) Write(w io.Writer, root xmltree.Node) error {
	if root.Name() == "" {
		return fmt.Errorf("cannot render an empty document")
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML declaration: %w", err)
	}

	enc := xml.NewEncoder(w)
	if s.indent != "" {
		enc.Indent("", s.indent)
	}
	if err := encodeNode(enc, root); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush XML encoder: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func encodeNode(enc *xml.Encoder, n xmltree.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name()}}
	for _, a := range n.Attrs() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to encode <%s>: %w", n.Name(), err)
	}
	if text := n.Text(); text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return fmt.Errorf("failed to encode text of <%s>: %w", n.Name(), err)
		}
	}
	for _, child := range n.Children() {
		if err := encodeNode(enc, child); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return fmt.Errorf("failed to encode </%s>: %w", n.Name(), err)
	}
	return nil
}
