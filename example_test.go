package kcluster_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/model"
)

func Example() {
	points := []*model.Point{
		model.NewPoint(0, []float64{0, 0, 0}, ""),
		model.NewPoint(1, []float64{0, 0, 1}, ""),
		model.NewPoint(2, []float64{10, 10, 10}, ""),
		model.NewPoint(3, []float64{10, 10, 11}, ""),
	}

	c, err := kcluster.New(kcluster.Config{K: 2, Dimension: 3, MaxIterations: 100}, kcluster.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	res, err := c.Run(points)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Stop, res.Sizes())
	fmt.Println(points[0].Cluster() == points[1].Cluster(), points[0].Cluster() == points[2].Cluster())
	// Output:
	// converged [2 2]
	// true false
}

func Example_tooManyClusters() {
	points := []*model.Point{
		model.NewPoint(0, []float64{1}, ""),
		model.NewPoint(1, []float64{2}, ""),
	}

	c, err := kcluster.New(kcluster.Config{K: 3, Dimension: 1}, kcluster.WithSeed(1))
	if err != nil {
		log.Fatal(err)
	}

	_, err = c.Run(points)
	fmt.Println(err)
	// Output: kmeans: configuration error: k exceeds number of points: k=3, points=2
}
