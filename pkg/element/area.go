package element

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/stolasapp/elemental/pkg/attr"
	"github.com/stolasapp/elemental/pkg/markup"
)

// Area is the <area> element, a clickable region inside a [Map]. Its coords
// attribute is derived from Shape and cannot be set on its own.
type Area struct {
	Global
	Shape          AreaShape
	Alt            attr.Text
	Href           attr.URL
	Download       attr.Download
	Ping           attr.URLList
	ReferrerPolicy attr.ReferrerPolicy
	Rel            attr.Rel
	Target         attr.Target
}

// Tag satisfies [markup.Element].
func (Area) Tag() string { return atom.Area.String() }

// Attrs satisfies [markup.Element].
func (e Area) Attrs() attr.List {
	return e.list().With(
		attr.Named("shape", attr.Text(e.Shape.Kind())),
		attr.Named("coords", attr.Text(e.Shape.coordsText())),
		attr.Named("alt", e.Alt),
		attr.Named("href", e.Href),
		attr.Named("download", e.Download),
		attr.Named("ping", e.Ping),
		attr.Named("referrerpolicy", e.ReferrerPolicy),
		attr.Named("rel", e.Rel),
		attr.Named("target", e.Target),
	)
}

// Check satisfies [markup.Checker]. A linked area needs alternative text.
func (e Area) Check() error {
	if _, linked := e.Href.AttrValue(); linked && e.Alt == "" {
		return fmt.Errorf("%w: <area> with href requires alt", ErrStructure)
	}
	return nil
}

// Render satisfies [templ.Component].
func (e Area) Render(ctx context.Context, w io.Writer) error {
	return markup.Render(ctx, w, e)
}

type shapeKind uint8

const (
	shapeRect shapeKind = iota + 1
	shapeCircle
	shapePoly
	shapeDefault
)

var shapeNames = [...]string{"", "rect", "circle", "poly", "default"}

// AreaShape is the region an [Area] covers together with its coordinates.
// The zero value is absent, which browsers treat as a rectangle.
type AreaShape struct {
	kind   shapeKind
	coords []float64
}

// Rect covers the rectangle from the top-left corner (x1, y1) to the
// bottom-right corner (x2, y2).
func Rect(x1, y1, x2, y2 float64) (AreaShape, error) {
	if err := checkCoords(x1, y1, x2, y2); err != nil {
		return AreaShape{}, err
	}
	if x1 >= x2 || y1 >= y2 {
		return AreaShape{}, invalidCoords(x1, y1, x2, y2)("top-left corner must precede bottom-right corner")
	}
	return AreaShape{kind: shapeRect, coords: []float64{x1, y1, x2, y2}}, nil
}

// Circle covers the circle centered on (x, y) with radius r.
func Circle(x, y, r float64) (AreaShape, error) {
	if err := checkCoords(x, y, r); err != nil {
		return AreaShape{}, err
	}
	if r <= 0 {
		return AreaShape{}, invalidCoords(x, y, r)("radius must be positive")
	}
	return AreaShape{kind: shapeCircle, coords: []float64{x, y, r}}, nil
}

// Poly covers the polygon through the given x,y pairs. At least three
// points are required.
func Poly(points ...float64) (AreaShape, error) {
	if err := checkCoords(points...); err != nil {
		return AreaShape{}, err
	}
	const minCoords = 6
	if len(points) < minCoords || len(points)%2 != 0 {
		return AreaShape{}, invalidCoords(points...)("polygon needs at least three x,y pairs")
	}
	return AreaShape{kind: shapePoly, coords: append([]float64(nil), points...)}, nil
}

// DefaultShape covers the whole image.
func DefaultShape() AreaShape {
	return AreaShape{kind: shapeDefault}
}

// ParseAreaShape builds a shape from its shape and coords attribute text,
// such as "circle" and "75,75,75".
func ParseAreaShape(kind, coords string) (AreaShape, error) {
	var nums []float64
	if strings.TrimSpace(coords) != "" {
		for field := range strings.SplitSeq(coords, ",") {
			n, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return AreaShape{}, &attr.ValidationError{
					Attribute: "coords",
					Input:     coords,
					Reason:    "not a comma-separated list of numbers",
				}
			}
			nums = append(nums, n)
		}
	}
	switch strings.ToLower(kind) {
	case "rect", "rectangle":
		if len(nums) != 4 { //nolint:mnd // x1,y1,x2,y2
			return AreaShape{}, invalidCoords(nums...)("rectangle needs four coordinates")
		}
		return Rect(nums[0], nums[1], nums[2], nums[3])
	case "circle", "circ":
		if len(nums) != 3 { //nolint:mnd // x,y,r
			return AreaShape{}, invalidCoords(nums...)("circle needs three coordinates")
		}
		return Circle(nums[0], nums[1], nums[2])
	case "poly", "polygon":
		return Poly(nums...)
	case "default":
		if len(nums) != 0 {
			return AreaShape{}, invalidCoords(nums...)("default shape takes no coordinates")
		}
		return DefaultShape(), nil
	}
	return AreaShape{}, &attr.ValidationError{
		Attribute: "shape",
		Input:     kind,
		Reason:    "unknown keyword",
	}
}

// Kind returns the shape keyword, or the empty string if absent.
func (s AreaShape) Kind() string { return shapeNames[s.kind] }

// Coords returns a copy of the shape's coordinates.
func (s AreaShape) Coords() []float64 {
	return append([]float64(nil), s.coords...)
}

func (s AreaShape) coordsText() string {
	parts := make([]string, len(s.coords))
	for i, c := range s.coords {
		parts[i] = strconv.FormatFloat(c, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func checkCoords(coords ...float64) error {
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return invalidCoords(coords...)("coordinates must be finite")
		}
	}
	return nil
}

func invalidCoords(coords ...float64) func(reason string) error {
	return func(reason string) error {
		return &attr.ValidationError{
			Attribute: "coords",
			Input:     AreaShape{coords: coords}.coordsText(),
			Reason:    reason,
		}
	}
}
