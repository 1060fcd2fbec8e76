package sink

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/matzehuels/slidedeck/pkg/canvas"
)

func (w *pptxWriter) writeSlide(zw *zip.Writer, c *canvas.Canvas, n int) error {
	var shapes strings.Builder
	for i, el := range c.Elements() {
		writeShapeXML(&shapes, el, i+2) // id 1 is the group shape
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld name="%s">
    <p:bg>
      <p:bgPr>
        <a:solidFill><a:srgbClr val="%s"/></a:solidFill>
        <a:effectLst/>
      </p:bgPr>
    </p:bg>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML,
		xmlEscape(c.Title), c.Background.Hex(), shapes.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", n), content)
}

func writeShapeXML(b *strings.Builder, el canvas.Element, id int) {
	name := fmt.Sprintf("Rectangle %d", id-1)
	txBox := ""
	if el.Kind == canvas.KindText {
		name = fmt.Sprintf("TextBox %d", id-1)
		txBox = ` txBox="1"`
	}

	fmt.Fprintf(b, `      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvSpPr%s/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
`, id, name, txBox,
		canvas.InchesToEMU(el.Box.X), canvas.InchesToEMU(el.Box.Y),
		canvas.InchesToEMU(el.Box.W), canvas.InchesToEMU(el.Box.H),
		fillXML(el.Fill), lineXML(el))

	switch {
	case el.Kind == canvas.KindText:
		writeTextBodyXML(b, el.Text, *el.Style, "")
	case el.IsLabel():
		writeTextBodyXML(b, el.Text, *el.Style, ` anchor="ctr"`)
	}
	b.WriteString("      </p:sp>\n")
}

func fillXML(c *canvas.Color) string {
	if c == nil {
		return "          <a:noFill/>\n"
	}
	return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", c.Hex())
}

func lineXML(el canvas.Element) string {
	if !el.HasBorder() {
		return "          <a:ln><a:noFill/></a:ln>\n"
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		canvas.PointsToEMU(el.BorderWidth), el.Border.Hex())
}

// writeTextBodyXML writes one paragraph with one run style. Line feeds in
// the text become soft line breaks inside the paragraph.
func writeTextBodyXML(b *strings.Builder, text string, s canvas.Style, anchor string) {
	wrap := "square"
	if s.NoWrap {
		wrap = "none"
	}
	fmt.Fprintf(b, `        <p:txBody>
          <a:bodyPr wrap="%s" rtlCol="0"%s/>
          <a:lstStyle/>
          <a:p>
            <a:pPr algn="%s"/>
`, wrap, anchor, alignXML(s.Align))

	rPr := runPropsXML(s)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("            <a:br>" + rPr + "</a:br>\n")
		}
		fmt.Fprintf(b, "            <a:r>%s<a:t>%s</a:t></a:r>\n", rPr, xmlEscape(line))
	}
	b.WriteString("          </a:p>\n        </p:txBody>\n")
}

func runPropsXML(s canvas.Style) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` lang="en-US" sz="%d"`, int(s.Size*100+0.5))
	if s.Bold {
		attrs.WriteString(` b="1"`)
	}
	if s.Italic {
		attrs.WriteString(` i="1"`)
	}
	return fmt.Sprintf(`<a:rPr%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`,
		attrs.String(), s.Color.Hex())
}

func alignXML(a canvas.Align) string {
	switch a {
	case canvas.AlignCenter:
		return "ctr"
	case canvas.AlignRight:
		return "r"
	}
	return "l"
}
