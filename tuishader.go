// Package tuishader draws the output of fragment shaders into terminal
// cells.
//
// A ShaderCanvas maps each cell of a screen region to one rendered
// pixel and asks caller-supplied rules which character and style the
// cell should get. The pixels come from a PixelSource, usually a
// CanvasState wrapping a GPU engine, and each Draw call renders one
// frame at the region's current size.
//
// The minimal program is a CanvasState around a WGSL fragment shader
// and a draw loop:
//
//	state, err := tuishader.NewCanvasState(wgpu_engine.WGSLSource(src))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer state.Close()
//
//	canvas := tuishader.NewShaderCanvas()
//	for {
//		width, height := screen.Size()
//		canvas.Draw(screen, tuishader.Rect{Width: width, Height: height}, state)
//		screen.Show()
//	}
package tuishader
