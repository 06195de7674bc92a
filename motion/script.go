package motion

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wiggle/geom"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

const clockVar = "clock"

var ErrScriptOutputs = errors.New("motion: script must set offset_x and offset_y")

// Script is a compiled tengo program computing the wander offset. It reads
// the global `clock` (wander time in milliseconds) and must assign
// `offset_x` and `offset_y`.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScript reads a script from disk, falling back to the embedded
// scripts/ directory ("lissajous.tengo", "figure8.tengo").
func LoadScript(name string) (*Script, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		embedded, embedErr := scriptsFS.ReadFile(embeddedScriptPath(name))
		if embedErr != nil {
			return nil, fmt.Errorf("motion: load script %s: %w", name, err)
		}
		src = embedded
	}
	return CompileScript(name, src)
}

func embeddedScriptPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "motion/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return path.Join("scripts", s)
}

// CompileScript compiles src and runs it once at time 0 to check that it
// produces both outputs.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add(clockVar, 0.0); err != nil {
		return nil, fmt.Errorf("motion: script %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion: compile script %s: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled}
	if _, err := s.Offset(0); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("offset_x") || !compiled.IsDefined("offset_y") {
		return nil, fmt.Errorf("%w (%s)", ErrScriptOutputs, name)
	}
	return s, nil
}

func (s *Script) Name() string { return s.name }

// Offset runs the script for the given time.
func (s *Script) Offset(clock float64) (geom.Vec2, error) {
	if err := s.compiled.Set(clockVar, clock); err != nil {
		return geom.Vec2{}, fmt.Errorf("motion: script %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return geom.Vec2{}, fmt.Errorf("motion: run script %s: %w", s.name, err)
	}
	return geom.V(
		s.compiled.Get("offset_x").Float(),
		s.compiled.Get("offset_y").Float(),
	), nil
}
