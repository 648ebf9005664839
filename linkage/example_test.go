package linkage_test

import (
	"fmt"

	"github.com/katalvlaran/ringlink/layout"
	"github.com/katalvlaran/ringlink/linkage"
	"github.com/katalvlaran/ringlink/similarity"
)

func ExampleEngine_Run() {
	S, _ := similarity.New([][]float64{
		{1.0, 0.9, 0.1, 0.2},
		{0.9, 1.0, 0.2, 0.1},
		{0.1, 0.2, 1.0, 0.9},
		{0.2, 0.1, 0.9, 1.0},
	})
	order := []int{0, 1, 2, 3}
	pts, _ := layout.AlongOrder(order, layout.DefaultRadius)

	e, _ := linkage.New(S, order, pts)
	events, err := e.Run(2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for ev := range events {
		fmt.Printf("step %d: %d+%d → %d %v score=%.2f live=%d\n",
			ev.Step, ev.A, ev.B, ev.Cluster.ID, ev.Cluster.Members, ev.Score, ev.Live)
	}
	fmt.Println(e.State())
	// Output:
	// step 1: 0+1 → 4 [0 1] score=0.90 live=3
	// step 2: 2+3 → 5 [2 3] score=0.90 live=2
	// step 3: 4+5 → 6 [0 1 2 3] score=0.15 live=1
	// done
}
