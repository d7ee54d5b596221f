package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alantheprice/consoletk/pkg/console"
)

var demoHeight int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the full widget set in a live update loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(demoHeight)
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoHeight, "height", 20, "rows to reserve for the viewport")
}

func runDemo(height int) error {
	session, err := console.Open(height)
	if err != nil {
		return err
	}
	defer session.Close()

	frames := 0
	var last console.KeyEvent

	for {
		ev, err := session.Poll()
		if err != nil {
			return err
		}
		if ev.Key == console.KeyEscape {
			break
		}
		if !ev.None() {
			last = ev
		}

		frames++
		if err := drawFrame(session, frames, last); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}

	if err := session.Close(); err != nil {
		return err
	}
	color.Green("demo finished after %d frames", frames)
	return nil
}

func drawFrame(s *console.Session, frame int, last console.KeyEvent) error {
	violet := console.ParseColor("violet")

	if err := s.WriteAt("ConsoleTK demo", 0, 0, console.Style{Fg: violet, Bold: console.FlagOn}); err != nil {
		return err
	}

	if err := s.MoveTo(0, 2); err != nil {
		return err
	}
	if err := s.BooleanTickbox(true, "I'm true", console.Style{}); err != nil {
		return err
	}
	if err := s.MoveRel(11, 0); err != nil {
		return err
	}
	if err := s.BooleanTickbox(false, "I'm false", console.Style{}); err != nil {
		return err
	}

	if err := s.MoveTo(0, 3); err != nil {
		return err
	}
	if err := s.VerticalSeparator(2, console.Style{}, false); err != nil {
		return err
	}

	if err := s.MoveTo(2, 3); err != nil {
		return err
	}
	if err := s.AbsoluteValueBar(float64(frame%11), 0, 10, "kg", console.BarOptions{
		Label:     "Weight",
		MaxLength: 20,
		AutoColor: true,
		HighIsHot: true,
	}); err != nil {
		return err
	}

	if err := s.MoveTo(2, 4); err != nil {
		return err
	}
	if err := s.AbsoluteValueBar(float64(frame%11)/10, 0, 1, "rad/s", console.BarOptions{
		Label:     " Angle",
		MaxLength: 30,
	}); err != nil {
		return err
	}

	if err := s.MoveTo(0, 5); err != nil {
		return err
	}
	if err := s.HorizontalSeparator(78, console.Style{Fg: console.Green}, false); err != nil {
		return err
	}

	if err := s.MoveTo(30, 6); err != nil {
		return err
	}
	if err := s.VerticalSeparator(5, console.Style{}, true); err != nil {
		return err
	}

	if err := s.WriteAt("I'm a label!", 10, 7, console.Style{}); err != nil {
		return err
	}

	if err := s.MoveTo(40, 7); err != nil {
		return err
	}
	if err := s.Box(8, 4, console.Style{Fg: console.Yellow, Bg: console.ParseColor("orange")},
		console.Style{Bg: violet}, false); err != nil {
		return err
	}
	if err := s.WriteAt("In the", 41, 8, console.Style{Bg: violet}); err != nil {
		return err
	}
	if err := s.WriteAt("box!", 41, 9, console.Style{Bg: violet}); err != nil {
		return err
	}

	// A blinking pattern in the matrix, toggled every other frame.
	on := frame%2 == 0
	matrix := [][]bool{
		{on, !on, on},
		{!on, on, !on},
		{on, !on, on},
	}
	if err := s.MoveTo(55, 7); err != nil {
		return err
	}
	if err := s.BooleanMatrix(matrix, "Channels", console.Style{}); err != nil {
		return err
	}

	if err := s.MoveTo(0, 12); err != nil {
		return err
	}
	if err := s.Box(20, 6, console.Style{Fg: console.Blue, Bg: console.ParseColor("base00")},
		console.Style{Bg: console.ParseColor("base02")}, true); err != nil {
		return err
	}

	if err := s.WriteAt("Press a key... (esc to quit)", 25, 12, console.Style{}); err != nil {
		return err
	}
	if last.Key != console.KeyNone {
		if err := s.WriteAt(fmt.Sprintf("Keypress: %-20s", describeKey(last)), 25, 14, console.Style{}); err != nil {
			return err
		}
	}

	return s.MoveTo(0, 0)
}

func describeKey(ev console.KeyEvent) string {
	switch ev.Key {
	case console.KeyUp:
		return "up"
	case console.KeyDown:
		return "down"
	case console.KeyLeft:
		return "left"
	case console.KeyRight:
		return "right"
	case console.KeyEscape:
		return "esc"
	case console.KeyChar:
		return fmt.Sprintf("%q (code: %d)", ev.Char, ev.Char)
	default:
		return "none"
	}
}
