// Package cfdi loads CFDI tax invoices into a queryable element tree.
//
// Only the handful of elements this tool reads are modelled: the Comprobante
// header, Emisor, Receptor and the Concepto line items. Lookup goes by local
// element name so that cfdi:-prefixed, differently prefixed and unprefixed
// documents (CFDI 3.3 and 4.0 alike) all resolve.
package cfdi

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/grupocolon/cfdi-fuel/internal/model"
)

// CFDI namespaces
const (
	NamespaceCFDI40 = "http://www.sat.gob.mx/cfd/4"
	NamespaceCFDI33 = "http://www.sat.gob.mx/cfd/3"
)

// Element names read by this tool
const (
	NodeComprobante = "Comprobante"
	NodeEmisor      = "Emisor"
	NodeReceptor    = "Receptor"
	NodeConcepto    = "Concepto"
)

// Document is a parsed CFDI invoice
type Document struct {
	doc  *etree.Document
	root *etree.Element
}

// Load parses a CFDI document from a file path
func Load(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, model.NewParseError(path, "failed to read XML", err)
	}
	return wrap(doc, path)
}

// Parse parses a CFDI document from raw bytes
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, model.NewParseError("", "failed to parse XML", err)
	}
	return wrap(doc, "")
}

func wrap(doc *etree.Document, path string) (*Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, model.NewParseError(path, "empty XML document", nil)
	}
	return &Document{doc: doc, root: root}, nil
}

// Comprobante returns the invoice header element. The root itself qualifies
// when its local tag ends in Comprobante; otherwise the first matching
// descendant is used. Returns nil when the document has no header.
func (d *Document) Comprobante() *etree.Element {
	if strings.HasSuffix(d.root.Tag, NodeComprobante) {
		return d.root
	}
	return findElement(d.root, NodeComprobante)
}

// Emisor returns the issuer element, or nil
func (d *Document) Emisor() *etree.Element {
	return findElement(d.root, NodeEmisor)
}

// Receptor returns the recipient element, or nil
func (d *Document) Receptor() *etree.Element {
	return findElement(d.root, NodeReceptor)
}

// Conceptos returns every line item element in document order
func (d *Document) Conceptos() []*etree.Element {
	var items []*etree.Element
	collectElements(d.root, NodeConcepto, &items)
	return items
}

// Attr reads an attribute from an element, empty string when the element is
// nil or the attribute is absent
func Attr(elem *etree.Element, key string) string {
	if elem == nil {
		return ""
	}
	return elem.SelectAttrValue(key, "")
}

// findElement searches for the first element with the given local name,
// ignoring namespace prefixes
func findElement(elem *etree.Element, localName string) *etree.Element {
	if elem.Tag == localName {
		return elem
	}
	for _, child := range elem.ChildElements() {
		if found := findElement(child, localName); found != nil {
			return found
		}
	}
	return nil
}

// collectElements gathers every element with the given local name in
// document order
func collectElements(elem *etree.Element, localName string, out *[]*etree.Element) {
	if elem.Tag == localName {
		*out = append(*out, elem)
	}
	for _, child := range elem.ChildElements() {
		collectElements(child, localName, out)
	}
}
