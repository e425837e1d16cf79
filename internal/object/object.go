// ==============================================================================================
// FILE: internal/object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the Babalang runtime object model (spec.md §3 "Object") — seven variants with
//          reference/pointer indirection, following the same ObjectType-tag-plus-interface
//          pattern the teacher uses for its own value types.
// ==============================================================================================

package object

import (
	"fmt"

	"babalang/internal/ast"
	"babalang/internal/ident"
)

// ObjectType tags which variant an Object is, for error messages and type dispatch.
type ObjectType string

const (
	EMPTY_OBJ          ObjectType = "EMPTY"
	YOU_OBJ            ObjectType = "YOU"
	GROUP_OBJ          ObjectType = "GROUP"
	REFERENCE_OBJ      ObjectType = "REFERENCE"
	LEVEL_OBJ          ObjectType = "LEVEL"
	IMAGE_OBJ          ObjectType = "IMAGE"
	IMAGE_INSTANCE_OBJ ObjectType = "IMAGE_INSTANCE"
)

// Object is the runtime value interface every variant implements.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Empty is the singleton default/sentinel value (reserved id 0).
type Empty struct{}

func (*Empty) Type() ObjectType { return EMPTY_OBJ }
func (*Empty) Inspect() string  { return "<empty>" }

// Direction is a You's facing, 0..3 = right, up, left, down.
type Direction uint8

const (
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// ActiveAxis reports which coordinate motion ops act on: x for even dir, y for odd.
func (d Direction) ActiveAxis() bool { return d&1 != 0 } // true means "y is active"

// You is the fundamental mutable cell (spec.md §3).
type You struct {
	X, Y uint8
	Dir  Direction
}

func (*You) Type() ObjectType { return YOU_OBJ }
func (y *You) Inspect() string {
	return fmt.Sprintf("You{x=%d y=%d dir=%d}", y.X, y.Y, y.Dir)
}

// Active returns a pointer to the currently active coordinate (x or y, per Dir).
func (y *You) Active() *uint8 {
	if y.Dir.ActiveAxis() {
		return &y.Y
	}
	return &y.X
}

// Less implements the total ordering from spec.md §3: for dir=0 x ascending, dir=1 y ascending,
// dir=2 x descending, dir=3 y descending. Equality ignores dir.
func (y *You) Less(other *You) bool {
	switch y.Dir {
	case DirRight:
		return y.X < other.X
	case DirUp:
		return y.Y < other.Y
	case DirLeft:
		return y.X > other.X
	default: // DirDown
		return y.Y > other.Y
	}
}

// Equal ignores Dir, per spec.md §3.
func (y *You) Equal(other *You) bool {
	return y.X == other.X && y.Y == other.Y
}

// Group is an ordered stack-like sequence of Objects with a rotating cursor.
type Group struct {
	Data  []Object
	Index int
}

func (*Group) Type() ObjectType { return GROUP_OBJ }
func (g *Group) Inspect() string {
	return fmt.Sprintf("Group{len=%d index=%d}", len(g.Data), g.Index)
}

// Equal compares length and then each element's Type() tag (Babalang objects have no generic
// deep-equal, so element values are not compared). The evaluator's FACING/WITHOUT condition
// checks do not call it: they compare Group lengths and element type tags directly.
func (g *Group) Equal(other *Group) bool {
	if len(g.Data) != len(other.Data) {
		return false
	}
	for i := range g.Data {
		if g.Data[i].Type() != other.Data[i].Type() {
			return false
		}
	}
	return true
}

// Reference is an indirection to another named object. References are assumed acyclic; the
// evaluator does not detect cycles (spec.md §3 invariant).
type Reference struct {
	Pointer ident.ID
}

func (*Reference) Type() ObjectType { return REFERENCE_OBJ }
func (r *Reference) Inspect() string {
	return fmt.Sprintf("Reference{-> %d}", r.Pointer)
}

// Level is a callable closure-less function.
type Level struct {
	ID     ident.ID
	Args   []ident.ID // parameter IDs
	Params []Object   // bound argument values, len <= len(Args)
	Body   []ast.Instruction
}

func (*Level) Type() ObjectType { return LEVEL_OBJ }
func (l *Level) Inspect() string {
	return fmt.Sprintf("Level{args=%d params=%d}", len(l.Args), len(l.Params))
}

// Ready reports whether every parameter has been bound (spec.md §4.6 IDLE prefix on a Level).
func (l *Level) Ready() bool { return len(l.Args) == len(l.Params) }

// Image is a class template.
type Image struct {
	ID          ident.ID
	Constructor *Level
	Attributes  map[ident.ID]Object // nil value = currently unbound
	AttrPointer ident.ID

	// AttrOrder and NextAttr track which attribute a HAS on the template seeds next: Has on an
	// Image fills its declared attributes in declaration order before any further HAS falls
	// through to the constructor's parameter list (spec.md §4.7 Has-on-Image, generalized to
	// the class-construction idiom the sample programs use for attribute defaults).
	AttrOrder []ident.ID
	NextAttr  int
}

func (*Image) Type() ObjectType { return IMAGE_OBJ }
func (i *Image) Inspect() string {
	return fmt.Sprintf("Image{attrs=%d}", len(i.Attributes))
}

// ImageInstance is an instance of a class.
type ImageInstance struct {
	ClassID     ident.ID
	Attributes  map[ident.ID]Object
	AttrPointer ident.ID
}

func (*ImageInstance) Type() ObjectType { return IMAGE_INSTANCE_OBJ }
func (i *ImageInstance) Inspect() string {
	return fmt.Sprintf("ImageInstance{class=%d attrs=%d}", i.ClassID, len(i.Attributes))
}

// AllAttributesUnbound reports whether every attribute slot is currently nil, used by the
// LONELY prefix over Image/ImageInstance (spec.md §4.6).
func AllAttributesUnbound(attrs map[ident.ID]Object) bool {
	for _, v := range attrs {
		if v != nil {
			return false
		}
	}
	return true
}
