package quiz

import (
	"encoding/json"
	"fmt"
)

// VisualSpec describes a geometric illustration as plain data. It is a
// closed sum over the four variants below; presentation layers match on
// the concrete type to draw it. The core never inspects the payload
// beyond passing it through.
type VisualSpec interface {
	visualSpec()
}

// TriangleClass names a triangle's angle classification.
type TriangleClass string

const (
	ClassAcute  TriangleClass = "acute"
	ClassRight  TriangleClass = "right"
	ClassObtuse TriangleClass = "obtuse"
)

// GridSpec is a rows x cols grid with a number of shaded cells.
type GridSpec struct {
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Shaded int    `json:"shaded"`
	Color  string `json:"color"`
}

// CircleSpec is a circle divided into equal parts with some shaded.
type CircleSpec struct {
	Parts  int    `json:"parts"`
	Shaded int    `json:"shaded"`
	Color  string `json:"color"`
}

// TriangleSidesSpec is a triangle drawn with labeled side lengths.
type TriangleSidesSpec struct {
	A     int    `json:"a"`
	B     int    `json:"b"`
	C     int    `json:"c"`
	Color string `json:"color"`
}

// TriangleAnglesSpec is a representative triangle of a given angle class.
type TriangleAnglesSpec struct {
	Class TriangleClass `json:"type"`
	Color string        `json:"color"`
}

func (GridSpec) visualSpec()           {}
func (CircleSpec) visualSpec()         {}
func (TriangleSidesSpec) visualSpec()  {}
func (TriangleAnglesSpec) visualSpec() {}

const (
	kindGrid           = "grid"
	kindCircle         = "circle"
	kindTriangleSides  = "triangle-sides"
	kindTriangleAngles = "triangle-angles"
)

func (g GridSpec) MarshalJSON() ([]byte, error) {
	type alias GridSpec
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{kindGrid, alias(g)})
}

func (c CircleSpec) MarshalJSON() ([]byte, error) {
	type alias CircleSpec
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{kindCircle, alias(c)})
}

func (t TriangleSidesSpec) MarshalJSON() ([]byte, error) {
	type alias TriangleSidesSpec
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{kindTriangleSides, alias(t)})
}

func (t TriangleAnglesSpec) MarshalJSON() ([]byte, error) {
	type alias TriangleAnglesSpec
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{kindTriangleAngles, alias(t)})
}

// UnmarshalVisual decodes a visual spec from JSON by its kind tag.
func UnmarshalVisual(data []byte) (VisualSpec, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("read visual kind: %w", err)
	}

	switch probe.Kind {
	case kindGrid:
		var v GridSpec
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case kindCircle:
		var v CircleSpec
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case kindTriangleSides:
		var v TriangleSidesSpec
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case kindTriangleAngles:
		var v TriangleAnglesSpec
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown visual kind: %q", probe.Kind)
	}
}

// UnmarshalJSON decodes an item, resolving the visual field through its
// kind tag.
func (it *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := struct {
		*alias
		Visual json.RawMessage `json:"visual"`
	}{alias: (*alias)(it)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Visual) > 0 && string(aux.Visual) != "null" {
		v, err := UnmarshalVisual(aux.Visual)
		if err != nil {
			return err
		}
		it.Visual = v
	}
	return nil
}
