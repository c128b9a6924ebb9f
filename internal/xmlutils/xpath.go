// Package xmlutils reads values back out of XML documents with XPath.
package xmlutils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// LoadXML parses an XML document from r.
func LoadXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// LoadXMLFile opens and parses an XML file.
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer file.Close()

	root, err := LoadXML(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", xmlFilePath, err)
	}
	return root, nil
}

// ExtractFromXML returns the string value of every node matched by xpath.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath %q: %w", xpath, err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, strings.TrimSpace(iter.Node().String()))
	}
	return values, nil
}

// ExtractFirst returns the first value matched by xpath, or "" when nothing
// matches.
func ExtractFirst(root *xmlpath.Node, xpath string) (string, error) {
	values, err := ExtractFromXML(root, xpath)
	if err != nil {
		return "", err
	}
	return GetOrEmpty(values, 0), nil
}

// GetOrEmpty returns slice[index], or "" when index is out of range.
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}
