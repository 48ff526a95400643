package raymond_test

import (
	"context"
	"fmt"

	"github.com/algoprose/classics/raymond"
)

// ////////////////////////////////////////////////////////////////////////////
// Scenario: a 3-node path 0—1—2 with the token starting at node 0. Three
// sequential critical sections from different nodes; each prints who owns
// the section while the token silently travels along the path.
// ////////////////////////////////////////////////////////////////////////////
func ExampleCluster_InCS() {
	c, err := raymond.New([][2]int{{0, 1}, {1, 2}}, 0, raymond.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := c.Start(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Stop()

	for _, node := range []int{2, 0, 1} {
		node := node
		if err := c.InCS(context.Background(), node, func() {
			fmt.Printf("node %d in critical section\n", node)
		}); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// Output:
	// node 2 in critical section
	// node 0 in critical section
	// node 1 in critical section
}
