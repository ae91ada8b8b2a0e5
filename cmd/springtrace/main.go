// Springtrace records spring trajectories as CSV.
//
// With --script it replays a JSON script (see spring.Script). Otherwise it
// traces a one-axis spring from --from to --to with the named preset until it
// settles or --frames is reached:
//
//	springtrace -n wobbly --from 0 --to 1 -o wobbly.csv
//	springtrace -s scenario.json
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pborman/getopt"

	"github.com/phanxgames/spring"
)

func main() {
	scriptPath := getopt.StringLong("script", 's', "", "replay a JSON script", "file")
	presetPath := getopt.StringLong("presets", 'p', "", "load extra presets from YAML", "file")
	presetName := getopt.StringLong("preset", 'n', "default", "preset for the simple trace", "name")
	dtFlag := getopt.StringLong("dt", 'd', "0.016666666666666666", "seconds per frame", "seconds")
	frames := getopt.IntLong("frames", 'f', 10000, "frame cap for the simple trace")
	fromFlag := getopt.StringLong("from", 0, "0", "start value for the simple trace")
	toFlag := getopt.StringLong("to", 0, "1", "goal for the simple trace")
	outPath := getopt.StringLong("output", 'o', "", "write CSV here instead of stdout", "file")
	list := getopt.BoolLong("list", 'l', "list presets and exit")
	help := getopt.BoolLong("help", 'h', "show usage")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}

	presets := spring.DefaultPresets
	if *presetPath != "" {
		data, err := os.ReadFile(*presetPath)
		if err != nil {
			log.Fatalf("failed to read presets: %v", err)
		}
		if presets, err = spring.LoadPresets(data); err != nil {
			log.Fatal(err)
		}
	}

	if *list {
		for _, name := range presets.Names() {
			p, err := presets.Physics(name)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%-10s stiffness=%g mass=%g friction=%g precision=%g\n",
				name, p.Stiffness, p.Mass, p.Friction, p.Precision)
		}
		return
	}

	var (
		trace spring.Trace
		err   error
	)
	if *scriptPath != "" {
		trace, err = runScript(*scriptPath)
	} else {
		trace, err = runSimple(presets, *presetName, *dtFlag, *fromFlag, *toFlag, *frames)
	}
	if err != nil {
		log.Fatal(err)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer f.Close()
		w = f
	}
	if err := trace.WriteCSV(w); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	log.Printf("springtrace: %d frames, final %v", len(trace), trace.Final())
}

func runScript(path string) (spring.Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	script, err := spring.LoadScript(data)
	if err != nil {
		return nil, err
	}
	return script.Run()
}

func runSimple(presets spring.Presets, name, dtText, fromText, toText string, frames int) (spring.Trace, error) {
	dt, err := strconv.ParseFloat(dtText, 64)
	if err != nil {
		return nil, fmt.Errorf("--dt: %w", err)
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("--dt must be positive, got %v", dt)
	}
	from, err := strconv.ParseFloat(fromText, 64)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := strconv.ParseFloat(toText, 64)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}

	physics, err := presets.Physics(name)
	if err != nil {
		return nil, err
	}
	if !physics.Stable(dt) {
		log.Printf("springtrace: warning: preset %q diverges at dt %g", name, dt)
	}

	script := &spring.Script{
		Initial: spring.Vec(from),
		Physics: physics.Config(),
		DT:      dt,
		Steps: []spring.ScriptStep{
			{Action: "to", Value: spring.Vec(to)},
			{Action: "settle", Frames: frames},
		},
	}
	return script.Run()
}
