package Trees

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var _ containers.Container = Container[int, uint]{}

// Container exposes a BST through gods' containers.Container, so it can be passed
// to code written against gods collections. Values come out in ascending order.
type Container[T any, S constraints.Unsigned] struct {
	*BST[T, S]
}

// Size as an int, as required by containers.Container.
func (u Container[T, S]) Size() int {
	return int(u.BST.Size())
}

// Values in ascending order.
func (u Container[T, S]) Values() []interface{} {
	vs := make([]interface{}, 0, u.BST.Size())
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u Container[T, S]) String() string {
	items := make([]string, 0, u.BST.Size())
	for v := range u.All() {
		items = append(items, fmt.Sprintf("%v", v))
	}
	return "BST\n" + strings.Join(items, ", ")
}
