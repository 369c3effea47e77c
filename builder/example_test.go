package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lodgenet/builder"
)

// ExampleBuildCatalog composes a path and a star into one catalog.
func ExampleBuildCatalog() {
	m, err := builder.BuildCatalog(nil, builder.Path(3), builder.Star(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("lodges:", len(m.Lodges()))
	for _, l := range m.Links() {
		fmt.Printf("%d: %d-%d (%d)\n", l.ID, l.Lodge1, l.Lodge2, l.Year)
	}
	// Output:
	// lodges: 6
	// 1: 1-2 (2000)
	// 2: 2-3 (2000)
	// 3: 4-5 (2000)
	// 4: 4-6 (2000)
}
