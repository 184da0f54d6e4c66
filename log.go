package polysynth

import (
	"fmt"
	"log"
)

// Verbose gates debugf output. Set by cmd/polysynth's -v flag; false by
// default so the render path stays quiet in normal operation.
var Verbose bool

func debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	log.Output(2, fmt.Sprintf("[polysynth] "+format, args...))
}
