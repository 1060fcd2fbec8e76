package sink

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/slidedeck/pkg/buildinfo"
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

// PPTXOption configures the presentation writer.
type PPTXOption func(*pptxWriter)

// WithBuildID stamps the package with an identifier (dc:identifier).
func WithBuildID(id uuid.UUID) PPTXOption { return func(w *pptxWriter) { w.buildID = id } }

// WithCreator sets dc:creator.
func WithCreator(name string) PPTXOption { return func(w *pptxWriter) { w.creator = name } }

// WithTimestamp sets the created and modified dates. The zero time is
// written when unset so output stays reproducible.
func WithTimestamp(t time.Time) PPTXOption { return func(w *pptxWriter) { w.timestamp = t } }

type pptxWriter struct {
	doc       *canvas.Document
	buildID   uuid.UUID
	creator   string
	timestamp time.Time
}

// RenderPPTX serializes the document as a .pptx package.
func RenderPPTX(doc *canvas.Document, opts ...PPTXOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePPTX(&buf, doc, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePPTX streams the .pptx package to w.
func WritePPTX(out io.Writer, doc *canvas.Document, opts ...PPTXOption) error {
	if doc == nil || len(doc.Slides) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "document has no slides")
	}
	w := &pptxWriter{doc: doc, creator: buildinfo.Application}
	for _, opt := range opts {
		opt(w)
	}

	zw := zip.NewWriter(out)
	steps := []func(*zip.Writer) error{
		w.writeContentTypes,
		w.writeRootRels,
		w.writeAppProperties,
		w.writeCoreProperties,
		w.writePresentation,
		w.writePresentationRels,
		writePresProps,
		writeViewProps,
		writeTableStyles,
		writeSlideMaster,
		writeSlideLayout,
		writeTheme,
	}
	for _, step := range steps {
		if err := step(zw); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write pptx")
		}
	}
	for i, c := range doc.Slides {
		if err := w.writeSlide(zw, c, i+1); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write slide %d", i+1)
		}
		if err := writeSlideRels(zw, i+1); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write slide %d rels", i+1)
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "close pptx")
	}
	return nil
}

func (w *pptxWriter) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtProps},
		},
	}
	for i := range w.doc.Slides {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	return writeXMLToZip(zw, "[Content_Types].xml", ct)
}

func (w *pptxWriter) writeRootRels(zw *zip.Writer) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeOfficeDoc, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeExtProps, Target: "docProps/app.xml"},
		},
	}
	return writeXMLToZip(zw, "_rels/.rels", rels)
}

// Presentation relationship IDs: the master is rId1, slides follow, then
// the fixed parts.
func (w *pptxWriter) writePresentationRels(zw *zip.Writer) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	add := func(typ, target string) {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", len(rels.Relationships)+1),
			Type:   typ,
			Target: target,
		})
	}
	add(relTypeSlideMaster, "slideMasters/slideMaster1.xml")
	for i := range w.doc.Slides {
		add(relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	add(relTypePresProps, "presProps.xml")
	add(relTypeViewProps, "viewProps.xml")
	add(relTypeTableStyles, "tableStyles.xml")
	add(relTypeTheme, "theme/theme1.xml")
	return writeXMLToZip(zw, "ppt/_rels/presentation.xml.rels", rels)
}

func (w *pptxWriter) writePresentation(zw *zip.Writer) error {
	var ids strings.Builder
	for i := range w.doc.Slides {
		fmt.Fprintf(&ids, "\n    <p:sldId id=\"%d\" r:id=\"rId%d\"/>", 256+i, i+2)
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s" saveSubsetFonts="1">
  <p:sldMasterIdLst>
    <p:sldMasterId id="2147483648" r:id="rId1"/>
  </p:sldMasterIdLst>
  <p:sldIdLst>%s
  </p:sldIdLst>
  <p:sldSz cx="%d" cy="%d"/>
  <p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, ids.String(),
		canvas.InchesToEMU(w.doc.Width), canvas.InchesToEMU(w.doc.Height))
	return writeRawXMLToZip(zw, "ppt/presentation.xml", content)
}

func (w *pptxWriter) writeAppProperties(zw *zip.Writer) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>%s</Application>
  <AppVersion>%s</AppVersion>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties, xmlEscape(buildinfo.UserAgent()), xmlEscape(buildinfo.Version), len(w.doc.Slides))
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

func (w *pptxWriter) writeCoreProperties(zw *zip.Writer) error {
	stamp := w.timestamp.UTC().Format("2006-01-02T15:04:05Z")
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <dc:identifier>%s</dc:identifier>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <cp:revision>1</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(w.doc.Title),
		xmlEscape(w.creator),
		w.buildID.String(),
		xmlEscape(w.creator),
		stamp, stamp,
	)
	return writeRawXMLToZip(zw, "docProps/core.xml", content)
}

func writeSlideRels(zw *zip.Writer, n int) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		},
	}
	return writeXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), rels)
}
