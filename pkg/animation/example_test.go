package animation_test

import (
	"fmt"

	"github.com/go-drift/carousel/pkg/animation"
)

// This example shows how wire identifiers resolve to curves.
func ExampleCurveByName() {
	curve := animation.CurveByName("easeInOut")
	fmt.Println(curve.Name())

	// Unknown identifiers fall back to the carousel default.
	curve = animation.CurveByName("warpSpeed")
	fmt.Println(curve.Name())

	// Output:
	// easeInOut
	// fastOutSlowIn
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
