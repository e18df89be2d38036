package project

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnimationType tags what attribute an animation drives.
type AnimationType string

const (
	AnimMove       AnimationType = "move"
	AnimExpression AnimationType = "expression"
	AnimScale      AnimationType = "scale"
	AnimRotate     AnimationType = "rotate"
	AnimAppear     AnimationType = "appear"
	AnimDisappear  AnimationType = "disappear"
)

// Easing names an interpolation preset. An empty value means EaseInOut.
type Easing string

const (
	EaseLinear Easing = "linear"
	EaseIn     Easing = "easeIn"
	EaseOut    Easing = "easeOut"
	EaseInOut  Easing = "easeInOut"
)

// ValueKind discriminates the payload shape of an animation endpoint.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindPoint
	KindScalar
	KindPose
	KindExpression
)

// Pose is the payload of appear/disappear animations: opacity plus a
// uniform scale, animated together.
type Pose struct {
	Opacity float64 `json:"opacity" yaml:"opacity"`
	Scale   float64 `json:"scale" yaml:"scale"`
}

// Value is the tagged union used for animation "from"/"to" endpoints.
// Exactly one variant is set; which one is determined by the animation
// type (move -> point, scale/rotate -> scalar, appear/disappear -> pose,
// expression -> expression label).
type Value struct {
	Point      *Point
	Scalar     *float64
	Pose       *Pose
	Expression string
}

func PointValue(x, y float64) Value {
	return Value{Point: &Point{X: x, Y: y}}
}

func ScalarValue(s float64) Value {
	return Value{Scalar: &s}
}

func PoseValue(opacity, scale float64) Value {
	return Value{Pose: &Pose{Opacity: opacity, Scale: scale}}
}

func ExpressionValue(name string) Value {
	return Value{Expression: name}
}

// Kind reports which variant is populated.
func (v Value) Kind() ValueKind {
	switch {
	case v.Point != nil:
		return KindPoint
	case v.Pose != nil:
		return KindPose
	case v.Scalar != nil:
		return KindScalar
	case v.Expression != "":
		return KindExpression
	}
	return KindInvalid
}

// MarshalJSON writes the wire shape of the active variant: an {x,y}
// object, an {opacity,scale} object, a bare number, or a bare string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case KindPoint:
		return json.Marshal(v.Point)
	case KindPose:
		return json.Marshal(v.Pose)
	case KindScalar:
		return json.Marshal(*v.Scalar)
	case KindExpression:
		return json.Marshal(v.Expression)
	}
	return nil, fmt.Errorf("animation value has no variant set")
}

// UnmarshalJSON infers the variant from the wire shape. Objects carrying
// an "opacity" key decode as a pose, other objects as a point.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty animation value")
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &v.Expression)
	case '{':
		var obj struct {
			X       *float64 `json:"x"`
			Y       *float64 `json:"y"`
			Opacity *float64 `json:"opacity"`
			Scale   *float64 `json:"scale"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Opacity != nil {
			scale := 1.0
			if obj.Scale != nil {
				scale = *obj.Scale
			}
			v.Pose = &Pose{Opacity: *obj.Opacity, Scale: scale}
			return nil
		}
		if obj.X != nil && obj.Y != nil {
			v.Point = &Point{X: *obj.X, Y: *obj.Y}
			return nil
		}
		return fmt.Errorf("animation value object is neither point nor pose: %s", data)
	default:
		var s float64
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("animation value: %w", err)
		}
		v.Scalar = &s
		return nil
	}
}

// MarshalYAML mirrors the JSON shapes for YAML exports.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind() {
	case KindPoint:
		return v.Point, nil
	case KindPose:
		return v.Pose, nil
	case KindScalar:
		return *v.Scalar, nil
	case KindExpression:
		return v.Expression, nil
	}
	return nil, fmt.Errorf("animation value has no variant set")
}

// UnmarshalYAML infers the variant the same way UnmarshalJSON does,
// using the node tag to tell numbers from strings.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	*v = Value{}

	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return fmt.Errorf("animation value: %w", err)
			}
			v.Scalar = &f
			return nil
		default:
			v.Expression = node.Value
			return nil
		}

	case yaml.MappingNode:
		var obj struct {
			X       *float64 `yaml:"x"`
			Y       *float64 `yaml:"y"`
			Opacity *float64 `yaml:"opacity"`
			Scale   *float64 `yaml:"scale"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		if obj.Opacity != nil {
			scale := 1.0
			if obj.Scale != nil {
				scale = *obj.Scale
			}
			v.Pose = &Pose{Opacity: *obj.Opacity, Scale: scale}
			return nil
		}
		if obj.X != nil && obj.Y != nil {
			v.Point = &Point{X: *obj.X, Y: *obj.Y}
			return nil
		}
	}
	return fmt.Errorf("animation value is neither point, pose, scalar nor expression")
}
