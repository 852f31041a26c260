package nepali

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/btree"
	"gopkg.in/yaml.v3"
)

type binding struct {
	name  string
	value int64
}

func bindingLess(a, b binding) bool { return a.name < b.name }

// Vars is the single flat variable table of a program run. Every block and
// loop body reads and writes the same table; there is no shadowing.
// Iteration is ordered by name.
type Vars struct {
	tree *btree.BTreeG[binding]
}

func NewVars() *Vars {
	return &Vars{tree: btree.NewG(8, bindingLess)}
}

// Set binds or overwrites name.
func (v *Vars) Set(name string, value int64) {
	v.tree.ReplaceOrInsert(binding{name: name, value: value})
}

// Get returns the value bound to name and whether it exists.
func (v *Vars) Get(name string) (int64, bool) {
	b, ok := v.tree.Get(binding{name: name})
	return b.value, ok
}

func (v *Vars) Len() int { return v.tree.Len() }

// Reset removes every binding.
func (v *Vars) Reset() { v.tree.Clear(false) }

// Each calls fn for every binding in name order until fn returns false.
func (v *Vars) Each(fn func(name string, value int64) bool) {
	v.tree.Ascend(func(b binding) bool {
		return fn(b.name, b.value)
	})
}

// Snapshot copies the table into a plain map.
func (v *Vars) Snapshot() map[string]int64 {
	out := make(map[string]int64, v.Len())
	v.Each(func(name string, value int64) bool {
		out[name] = value
		return true
	})
	return out
}

// MarshalYAML emits the table as a mapping in name order.
func (v *Vars) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	v.Each(func(name string, value int64) bool {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(value, 10)},
		)
		return true
	})
	return node, nil
}

// String returns a deterministically ordered dump of the table.
func (v *Vars) String() string {
	if v.Len() == 0 {
		return "Vars: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Vars:\n")
	v.Each(func(name string, value int64) bool {
		fmt.Fprintf(&sb, "  %-20s  %d\n", name, value)
		return true
	})
	return sb.String()
}
