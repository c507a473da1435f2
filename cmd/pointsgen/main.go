package main

import (
	"os"

	"github.com/reddit/pointsgen/cmd/lib/pointsgen"
)

func main() {
	os.Exit(pointsgen.Run())
}
