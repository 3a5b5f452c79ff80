package recipe

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/recipes.yaml
var defaultBookYAML []byte

// DefaultSink is the synthetic node every serveable dish points at.
const DefaultSink = "serving"

// Book is the full recipe content of a kitchen: the graph declarations plus
// which dishes customers may order.
type Book struct {
	Name      string     `yaml:"name"`
	Sink      string     `yaml:"sink,omitempty"`
	Nodes     []string   `yaml:"nodes"`
	Edges     []EdgeDecl `yaml:"edges"`
	Serveable []string   `yaml:"serveable"`
	Orders    OrderSet   `yaml:"orders"`
}

// EdgeDecl declares one transformation. Input may be omitted.
type EdgeDecl struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Input string `yaml:"input,omitempty"`
}

// OrderSet lists the dishes customers ask for.
type OrderSet struct {
	Pool     []string `yaml:"pool"`
	Tutorial []string `yaml:"tutorial,omitempty"`
	Tiers    []Tier   `yaml:"tiers,omitempty"`
}

// Tier changes the order pool once Deliveries dishes have been served.
type Tier struct {
	At     int      `yaml:"at"`
	Add    []string `yaml:"add,omitempty"`
	Remove []string `yaml:"remove,omitempty"`
}

// ValidationError describes a malformed recipe book.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ParseBook decodes a YAML recipe book.
func ParseBook(data []byte) (Book, error) {
	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("recipe: yaml unmarshal: %w", err)
	}
	if b.Sink == "" {
		b.Sink = DefaultSink
	}
	return b, nil
}

// LoadBook reads a recipe book from path, or the embedded default when path
// is empty.
func LoadBook(path string) (Book, error) {
	if path == "" {
		return DefaultBook()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("recipe: failed to read %s: %w", path, err)
	}
	b, err := ParseBook(data)
	if err != nil {
		return Book{}, fmt.Errorf("recipe: failed to parse %s: %w", path, err)
	}
	return b, nil
}

// DefaultBook returns the embedded recipe book.
func DefaultBook() (Book, error) {
	return ParseBook(defaultBookYAML)
}

// Graph builds the recipe graph. Every serveable dish gets a serve edge to
// the sink.
func (b Book) Graph() *Graph {
	g := NewGraph()
	for _, n := range b.Nodes {
		g.AddNode(n)
	}
	g.AddNode(b.sink())
	for _, e := range b.Edges {
		g.AddEdge(e.From, e.To, e.Input)
	}
	for _, dish := range b.Serveable {
		g.AddEdge(dish, b.sink(), InputServe)
	}
	return g
}

func (b Book) sink() string {
	if b.Sink == "" {
		return DefaultSink
	}
	return b.Sink
}

// Validate checks that edges join declared nodes, that no node has two edges
// with the same input, and that every orderable dish is serveable.
func (b Book) Validate() error {
	declared := make(map[string]bool, len(b.Nodes)+1)
	for _, n := range b.Nodes {
		declared[n] = true
	}
	declared[b.sink()] = true

	seen := make(map[[2]string]bool)
	for _, e := range b.Edges {
		if !declared[e.From] || !declared[e.To] {
			return ValidationError{
				Code:    "UNKNOWN_NODE",
				Message: fmt.Sprintf("edge %q -> %q references an undeclared node", e.From, e.To),
			}
		}
		input := e.Input
		if input == "" {
			continue
		}
		key := [2]string{e.From, input}
		if seen[key] {
			return ValidationError{
				Code:    "DUPLICATE_INPUT",
				Message: fmt.Sprintf("%q has more than one %q edge", e.From, input),
			}
		}
		seen[key] = true
	}

	serveable := make(map[string]bool, len(b.Serveable))
	for _, d := range b.Serveable {
		if !declared[d] {
			return ValidationError{
				Code:    "UNKNOWN_NODE",
				Message: fmt.Sprintf("serveable dish %q is not a declared node", d),
			}
		}
		serveable[d] = true
	}

	if len(b.Orders.Pool) == 0 {
		return ValidationError{Code: "EMPTY_POOL", Message: "order pool is empty"}
	}

	orderable := append([]string{}, b.Orders.Pool...)
	orderable = append(orderable, b.Orders.Tutorial...)
	for _, t := range b.Orders.Tiers {
		orderable = append(orderable, t.Add...)
	}
	for _, d := range orderable {
		if !serveable[d] {
			return ValidationError{
				Code:    "NOT_SERVEABLE",
				Message: fmt.Sprintf("dish %q can be ordered but not served", d),
			}
		}
	}

	return nil
}
