package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"f1telemetrycompare/pkg/helper"
	"f1telemetrycompare/pkg/model"
	"f1telemetrycompare/pkg/telemetry"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dsvg"
)

const (
	chartWidth  = 900.0
	chartHeight = 460.0

	marginLeft   = 64.0
	marginRight  = 24.0
	marginTop    = 56.0
	marginBottom = 48.0
)

var (
	mu = sync.Mutex{}

	backgroundColor = color.RGBA{0x11, 0x11, 0x11, 0xff}
	gridColor       = color.RGBA{0x39, 0x39, 0x39, 0xff}
	axisColor       = color.RGBA{0xee, 0xee, 0xee, 0xff}
	sectorColor     = color.RGBA{0xee, 0xee, 0xee, 0xb0}
)

// BuildComparisonSVG renders the speed-vs-distance overlay for the web
// view. The SVG carries axes, legend and sector markers.
func BuildComparisonSVG(cmp model.Comparison, aligned telemetry.Aligned) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()

	svg := draw2dsvg.NewSvg()
	// system fonts keep the svg free of embedded glyph paths
	svg.FontMode = draw2dsvg.SysFontMode
	gc := draw2dsvg.NewGraphicContext(svg)

	drawComparison(gc, cmp, aligned, true)

	buffer := new(bytes.Buffer)
	buffer.WriteString(xml.Header)
	encoder := xml.NewEncoder(buffer)
	encoder.Indent("", "\t")
	err := encoder.Encode(svg)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// BuildComparisonPNG renders the overlay for the bot reply. Like the
// track thumbnails, the PNG variant draws no text.
func BuildComparisonPNG(cmp model.Comparison, aligned telemetry.Aligned) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()

	rect := image.Rect(0, 0, int(chartWidth), int(chartHeight))
	dest := image.NewRGBA(rect)
	gc := draw2dimg.NewGraphicContext(dest)

	drawComparison(gc, cmp, aligned, false)

	buffer := new(bytes.Buffer)
	err := png.Encode(buffer, dest)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func drawComparison(gc draw2d.GraphicContext, cmp model.Comparison, aligned telemetry.Aligned, withText bool) {
	fillRect(gc, 0, 0, chartWidth, chartHeight, backgroundColor)

	if len(aligned.Distance) < 2 {
		return
	}

	maxDist := aligned.Distance[len(aligned.Distance)-1]
	maxSpeed := 50.0
	for i := range aligned.Distance {
		if aligned.SpeedA[i] > maxSpeed {
			maxSpeed = aligned.SpeedA[i]
		}
		if aligned.SpeedB[i] > maxSpeed {
			maxSpeed = aligned.SpeedB[i]
		}
	}
	maxSpeed = math.Ceil(maxSpeed/50.0) * 50.0

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom
	toX := func(dist float64) float64 {
		return marginLeft + dist/maxDist*plotW
	}
	toY := func(speed float64) float64 {
		return marginTop + (1.0-speed/maxSpeed)*plotH
	}

	if withText {
		gc.SetFontData(draw2d.FontData{Name: "sans", Family: draw2d.FontFamilySans})
	}

	drawGrid(gc, maxDist, maxSpeed, toX, toY, withText)
	drawSectors(gc, cmp.SectorEnds, maxDist, toX, withText)

	drawTrace(gc, aligned.Distance, aligned.SpeedA, toX, toY, TeamColor(cmp.DriverA.Team))
	drawTrace(gc, aligned.Distance, aligned.SpeedB, toX, toY, TeamColor(cmp.DriverB.Team))

	if withText {
		drawLegendAndTitle(gc, cmp)
	}
}

func fillRect(gc draw2d.GraphicContext, x, y, w, h float64, c color.Color) {
	gc.Save()
	gc.SetFillColor(c)
	gc.MoveTo(x, y)
	gc.LineTo(x+w, y)
	gc.LineTo(x+w, y+h)
	gc.LineTo(x, y+h)
	gc.Close()
	gc.Fill()
	gc.Restore()
}

func drawGrid(gc draw2d.GraphicContext, maxDist, maxSpeed float64, toX, toY func(float64) float64, withText bool) {
	gc.Save()
	defer gc.Restore()

	gc.SetLineWidth(1)
	gc.SetFontSize(10)

	// horizontal lines every 50 km/h
	for speed := 0.0; speed <= maxSpeed; speed += 50.0 {
		gc.SetStrokeColor(gridColor)
		gc.MoveTo(toX(0), toY(speed))
		gc.LineTo(toX(maxDist), toY(speed))
		gc.Stroke()
		if withText {
			gc.SetFillColor(axisColor)
			gc.FillStringAt(fmt.Sprintf("%.0f", speed), marginLeft-34, toY(speed)+4)
		}
	}

	// vertical lines every 500 m, labelled in km
	for dist := 0.0; dist <= maxDist; dist += 500.0 {
		gc.SetStrokeColor(gridColor)
		gc.MoveTo(toX(dist), toY(0))
		gc.LineTo(toX(dist), toY(maxSpeed))
		gc.Stroke()
		if withText && int(dist)%1000 == 0 {
			gc.SetFillColor(axisColor)
			gc.FillStringAt(helper.MetersToKm(dist), toX(dist)-6, chartHeight-marginBottom+18)
		}
	}

	// axis frame
	gc.SetStrokeColor(axisColor)
	gc.MoveTo(toX(0), toY(maxSpeed))
	gc.LineTo(toX(0), toY(0))
	gc.LineTo(toX(maxDist), toY(0))
	gc.Stroke()

	if withText {
		gc.SetFillColor(axisColor)
		gc.FillStringAt("km/h", marginLeft-40, marginTop-10)
		gc.FillStringAt("km", chartWidth-marginRight-20, chartHeight-12)
	}
}

func drawSectors(gc draw2d.GraphicContext, sectorEnds []float64, maxDist float64, toX func(float64) float64, withText bool) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(sectorColor)
	gc.SetLineWidth(1)
	gc.SetLineDash([]float64{4, 4}, 0)
	gc.SetFontSize(10)

	for i, dist := range sectorEnds {
		if dist <= 0 || dist > maxDist {
			continue
		}
		gc.MoveTo(toX(dist), marginTop)
		gc.LineTo(toX(dist), chartHeight-marginBottom)
		gc.Stroke()
		if withText {
			gc.SetFillColor(sectorColor)
			gc.FillStringAt(fmt.Sprintf("S%d", i+1), toX(dist)+4, marginTop+12)
		}
	}
}

func drawTrace(gc draw2d.GraphicContext, distance, speed []float64, toX, toY func(float64) float64, c color.RGBA) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(c)
	gc.SetLineWidth(2.5)

	for i := range distance {
		if i == 0 {
			gc.MoveTo(toX(distance[i]), toY(speed[i]))
		} else {
			gc.LineTo(toX(distance[i]), toY(speed[i]))
		}
	}
	gc.Stroke()
}

func drawLegendAndTitle(gc draw2d.GraphicContext, cmp model.Comparison) {
	gc.Save()
	defer gc.Restore()

	gc.SetFontSize(13)
	gc.SetFillColor(axisColor)
	gc.FillStringAt(fmt.Sprintf("Vuelta rápida ▸ %s", cmp.Title()), marginLeft, 20)

	gc.SetFontSize(11)
	entries := []struct {
		label string
		c     color.RGBA
	}{
		{legendLabel(cmp.DriverA), TeamColor(cmp.DriverA.Team)},
		{legendLabel(cmp.DriverB), TeamColor(cmp.DriverB.Team)},
	}

	x := marginLeft
	for _, entry := range entries {
		gc.SetStrokeColor(entry.c)
		gc.SetLineWidth(3)
		gc.MoveTo(x, 36)
		gc.LineTo(x+22, 36)
		gc.Stroke()

		gc.SetFillColor(axisColor)
		gc.FillStringAt(entry.label, x+28, 40)
		x += 30 + 7.0*float64(len(entry.label))
	}
}

func legendLabel(dl model.DriverLap) string {
	return fmt.Sprintf("%s (%s) %s", dl.Driver, dl.Team, helper.SecondsToMinutes(dl.Lap.Time))
}
