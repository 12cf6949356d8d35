package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// guard logs a panic from step with its stack through the HAL logger, shows
// a red frame, and panics again. Panics are contract violations and are
// never recovered.
func (s *system) guard(step func() error) func() error {
	return func() error {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			s.logf("wiresphere panic at tick %d: %v", s.scene.Ticks(), v)
			for _, line := range strings.Split(string(debug.Stack()), "\n") {
				if line == "" {
					continue
				}
				s.logf("%s", line)
			}
			if s.fb != nil {
				s.fb.ClearRGB(0xC0, 0x10, 0x10)
				_ = s.fb.Present()
			}
			panic(fmt.Sprintf("wiresphere: %v", v))
		}()
		return step()
	}
}
