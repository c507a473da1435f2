package main

import (
	"os"

	"github.com/reddit/pointsgen/cmd/lib/pointclusters"
)

func main() {
	os.Exit(pointclusters.Run())
}
