package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cooking-collisions/internal/recipe"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Print and validate the recipe book",
	Long: `Print every ingredient with the edges leading out of it, the dishes
that can be served, and the order pools, then validate the book.

Edge labels name the tool that drives the transition; unlabelled edges are
combinations of two ingredients on a plate or counter.

Examples:
  kitchen recipes
  kitchen recipes --recipes ./my-recipes.yaml`,
	Args: cobra.NoArgs,
	Run:  runRecipes,
}

func init() {
	recipesCmd.Flags().StringVar(&flagRecipes, "recipes", "", "Path to custom recipe book YAML")
}

func runRecipes(_ *cobra.Command, _ []string) {
	book, err := recipe.LoadBook(flagRecipes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	graph := book.Graph()

	fmt.Printf("%s\n\n", book.Name)
	fmt.Print(graph.String())

	fmt.Println()
	fmt.Printf("Serveable (%d): %s\n", len(book.Serveable), strings.Join(book.Serveable, ", "))
	fmt.Printf("Chop:  %s\n", strings.Join(graph.WithInput(recipe.InputChop), ", "))
	fmt.Printf("Fry:   %s\n", strings.Join(graph.WithInput(recipe.InputFry), ", "))

	fmt.Println()
	fmt.Printf("Order pool: %s\n", strings.Join(book.Orders.Pool, ", "))
	if len(book.Orders.Tutorial) > 0 {
		fmt.Printf("Tutorial:   %s\n", strings.Join(book.Orders.Tutorial, " > "))
	}
	for _, t := range book.Orders.Tiers {
		fmt.Printf("After %d deliveries:", t.At)
		if len(t.Add) > 0 {
			fmt.Printf(" +%s", strings.Join(t.Add, ", +"))
		}
		if len(t.Remove) > 0 {
			fmt.Printf(" -%s", strings.Join(t.Remove, ", -"))
		}
		fmt.Println()
	}

	fmt.Println()
	if err := book.Validate(); err != nil {
		var verr recipe.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Invalid [%s]: %s\n", verr.Code, verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println("Recipe book OK")
}
