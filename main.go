// Command catmap renders a 3D map of mathematical categories and the
// functors between them to an interactive HTML page. The map itself is
// authored as a small Lisp program evaluated in a sandbox.
package main

import (
	"fmt"
	"log"

	"github.com/zrjames/catmap/pkg/engine"
	"github.com/zrjames/catmap/pkg/scene"
)

const outputPath = "test.html"

// mapSource is the category map: six categories at fixed positions and
// the ten functors connecting them.
const mapSource = `
(title "A 3D Map of Mathematical Categories and Functors")

(category "Set"    :pos (vec3 0 0 -1)  :color "grey"   :symbol "diamond")
(category "Top"    :pos (vec3 -2 2 1)  :color "blue"   :symbol "circle")
(category "Grp"    :pos (vec3 2 2 1)   :color "red"    :symbol "square")
(category "Ab"     :pos (vec3 2 0 1)   :color "orange" :symbol "square")
(category "Vect_k" :pos (vec3 2 -2 1)  :color "green"  :symbol "cross")
(category "Ring"   :pos (vec3 0 3 1)   :color "purple" :symbol "x")

(functor "Top"    "Set"    "U (Forgetful)")
(functor "Grp"    "Set"    "U (Forgetful)")
(functor "Vect_k" "Set"    "U (Forgetful)")
(functor "Ring"   "Set"    "U (Forgetful)")
(functor "Ab"     "Grp"    "Inclusion")
(functor "Set"    "Grp"    "F (Free Group)")
(functor "Set"    "Vect_k" "F (Free Vector Space)")
(functor "Top"    "Grp"    "π₁ (Fundamental Group)")
(functor "Top"    "Ab"     "Hₙ (Homology)")
(functor "Ring"   "Grp"    "Group of Units")
`

func run(path string) error {
	d, evalErrs, err := engine.NewEngine().Evaluate(mapSource)
	if err != nil {
		return fmt.Errorf("evaluate map: %w", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			log.Printf("map: %v", e)
		}
		return fmt.Errorf("map source has %d errors", len(evalErrs))
	}

	return scene.Render(d, path)
}

func main() {
	if err := run(outputPath); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully saved the interactive plot to test.html")
}
