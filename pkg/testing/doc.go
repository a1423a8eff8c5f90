// Package testing provides a harness for exercising render objects without
// a real host.
//
// # Quick Start
//
//	func TestVolume(t *testing.T) {
//	    view := widgets.VolumeView{}.CreateRenderObject(nil, platform.DefaultDisplayMetrics())
//	    tester := vvtest.NewViewTester(t, view)
//	    tester.PumpSize(220, 50)
//
//	    tester.PointerDown(100)
//	    ops := tester.Frame()
//	    // assert on view.Value() and ops
//	}
//
// Ops are serialized with two-decimal rounding and ARGB hex colors so they
// compare cleanly with testify's assert.Equal.
package testing
