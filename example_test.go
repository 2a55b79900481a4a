package custombar_test

import (
	"fmt"

	"github.com/ericlevine/custombar"
	"github.com/ericlevine/custombar/bitutil"
)

func ExampleEncode() {
	bits, err := custombar.Encode("A", custombar.ModeAlphanumeric, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(bits)
	fmt.Println(len(bitutil.ToRuns(bits)), "runs")
	// Output:
	// 1010100000111101
	// 9 runs
}

func ExampleDataURL() {
	fmt.Println(custombar.DataURL(`<svg width="1"/>`))
	// Output:
	// data:image/svg+xml;charset=utf-8,%3Csvg%20width%3D%221%22%2F%3E
}

func ExampleRenderSVG() {
	opts := custombar.VectorDefaults()
	opts.IncludeText = false
	opts.Height = 10
	svg, err := custombar.RenderSVG("", &opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(svg)
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="28" height="10" viewBox="0 0 28 10">
	// <rect x="0" y="0" width="28" height="10" fill="#ffffff" />
	// <rect x="6" y="0" width="2" height="10" fill="#000000" />
	// <rect x="10" y="0" width="8" height="10" fill="#000000" />
	// <rect x="20" y="0" width="2" height="10" fill="#000000" />
	// </svg>
}
