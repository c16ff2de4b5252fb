package tuishader

import "github.com/gdamore/tcell/v2"

// CharacterRule decides which character a cell gets. The zero canvas
// uses a space so the shader shows through the background color alone.
type CharacterRule func(Sample) rune

// CharacterAlways returns a rule that gives every cell the same
// character.
func CharacterAlways(r rune) CharacterRule {
	return func(Sample) rune { return r }
}

// StyleRule decides how a cell is styled from its sample.
type StyleRule func(Sample) tcell.Style

// ColorFg applies the sampled color to the cell's foreground.
func ColorFg(s Sample) tcell.Style {
	return tcell.StyleDefault.Foreground(s.Color())
}

// ColorBg applies the sampled color to the cell's background. This is
// the default rule.
func ColorBg(s Sample) tcell.Style {
	return tcell.StyleDefault.Background(s.Color())
}

// ColorFgAndBg applies the sampled color to both foreground and
// background, making the character choice invisible.
func ColorFgAndBg(s Sample) tcell.Style {
	return tcell.StyleDefault.Foreground(s.Color()).Background(s.Color())
}
