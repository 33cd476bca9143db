package tween

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// The script must define `ease := func(p) { ... }`.
const easeDispatchScript = `
__out := ease(__p)
`

// ScriptEase compiles a tengo script into an EaseFunc. The tengo "math"
// module is importable. Runtime failures are logged and fall back to linear
// progress so a broken script never stalls the timeline.
func ScriptEase(name string, src []byte) (EaseFunc, error) {
	full := make([]byte, 0, len(src)+len(easeDispatchScript)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, easeDispatchScript...)

	script := tengo.NewScript(full)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("__p", 0.0); err != nil {
		return nil, fmt.Errorf("tween: script %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tween: compile script %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("tween: run script %s: %w", name, err)
	}

	return func(p float64) float64 {
		if err := compiled.Set("__p", p); err != nil {
			log.Printf("tween: script %s set progress: %v", name, err)
			return p
		}
		if err := compiled.Run(); err != nil {
			log.Printf("tween: script %s: %v", name, err)
			return p
		}
		return compiled.Get("__out").Float()
	}, nil
}
