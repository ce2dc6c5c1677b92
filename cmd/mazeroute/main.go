// Command mazeroute reads a maze grid from standard input, solves it
// with both engines, and prints one line with the implementation tag,
// the optimal cost, and the number of cells on any optimal path:
//
//	$ mazeroute < maze.txt
//	GO: 7036 45
//
// With -render it additionally prints the maze with one optimal trail
// overlaid. Malformed input and unreachable ends are fatal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/mazeroute/maze"
	"github.com/katalvlaran/mazeroute/route"
)

func main() {
	render := flag.Bool("render", false, "print the maze with one optimal trail overlaid")
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("mazeroute: read input: %v", err)
	}

	m, err := maze.Parse(string(input))
	if err != nil {
		log.Fatalf("mazeroute: %v", err)
	}

	best, err := route.BestPath(m)
	if err != nil {
		log.Fatalf("mazeroute: %v", err)
	}
	all, err := route.AllOptimalCells(m)
	if err != nil {
		log.Fatalf("mazeroute: %v", err)
	}

	fmt.Printf("GO: %d %d\n", best.Cost, len(all.Cells))
	if *render {
		fmt.Println(maze.Render(m, best.Trail))
	}
}
