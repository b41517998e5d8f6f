// Package zpl compiles printable label elements into ZPL field commands.
//
// A label is a canvas of known width and height in printer dots. Every element
// placed on it is a Component: Text, Barcode, or one of the closed shapes
// Rectangle, Ellipse and DiagonalLine. Components are constructed with
// defaults, receive the canvas size through SetLabelSize, are positioned with
// declarative setters (alignment, margins, BelowOf) and finally serialize
// their state with GenerateInstruction:
//
//	title := zpl.NewText()
//	title.SetLabelSize(812, 1218)
//	title.SetText("Hello")
//	title.SetMarginTop(40)
//	title.SetAlignment(zpl.AlignCenter)
//	title.GenerateInstruction()
//	fmt.Println(title.Instruction())
//	// ^FO0,40^A0,30^FB812,1,0,C,0^FH_^FDHello\&^FS
//
// Setters mutate state immediately and in call order. Several of them read
// state written by earlier calls (center alignment reads the current width,
// margins read the current size), so the order of calls is part of the
// layout. Nothing is recomputed automatically: GenerateInstruction must be
// called again after any change.
//
// Margins do not mean the same thing for every kind. A right margin shrinks
// the canvas seen by a Text, shrinks the width of a Rectangle or
// DiagonalLine, and moves an Ellipse or Barcode to the left. The single value
// SetMargin doubles the right and bottom margins for every kind except
// Ellipse. These differences are visible in printer output and are kept.
//
// Invalid setter input never fails: the previous value is retained and a
// warning is written to the logger installed with SetLogger.
//
// Components are not safe for concurrent mutation.
package zpl
