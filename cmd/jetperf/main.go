package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"brayton"
	kitlog "github.com/go-kit/kit/log"
)

var (
	deck       string
	engineName string
	debugMode  bool
)

func init() {
	flag.StringVar(&deck, "deck", "", "cycle deck TOML file (omit for the interactive menu)")
	flag.StringVar(&engineName, "engine", "both", "engine to analyze: jet, fan or both")
	flag.BoolVar(&debugMode, "debug", false, "trace per-stage station values")
}

func main() {
	flag.Parse()
	if deck == "" {
		interactive()
		return
	}
	if debugMode {
		log.Println("[info] DEBUG is ON")
	}
	params, err := brayton.LoadParameters(deck)
	if err != nil {
		log.Fatalf("[NOK ] %s: %s", deck, err)
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("[NOK ] %s", err)
	}
	log.Printf("[conf] deck: %s (M0=%.2f, %s)\n", deck, params.Mach, params.Fuel)
	var names []string
	switch strings.ToLower(engineName) {
	case "both":
		names = []string{"turbojet", "turbofan"}
	default:
		names = []string{engineName}
	}
	for _, name := range names {
		engine, err := brayton.EngineFromString(name, params)
		if err != nil {
			log.Fatalf("[NOK ] %s", err)
		}
		if err = analyze(engine); err != nil {
			log.Fatalf("[NOK ] %s", err)
		}
	}
	log.Println("[ ok ] done")
}

// analyze runs one engine and prints its performance block, plus the
// station table when debugging.
func analyze(engine brayton.Engine) error {
	if debugMode {
		if tr, ok := engine.(brayton.Traceable); ok {
			tr.EnableTrace(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)))
		}
	}
	report, err := engine.Run()
	if err != nil {
		return err
	}
	fmt.Printf("\n--- %s PERFORMANCE ---\n", strings.ToUpper(report.Engine.String()))
	fmt.Println(report.Performance)
	fmt.Println("-----------------------------------")
	if debugMode {
		printStations(report.Stations)
	}
	return nil
}

func printStations(stations brayton.Stations) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "station\tTt (K)\tPt (Pa)")
	for _, st := range stations {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", st.Station, st.Tt, st.Pt)
	}
	w.Flush()
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// interactive reproduces the original menu-driven console workflow.
func interactive() {
	in := bufio.NewReader(os.Stdin)
	var params brayton.Parameters
	inputsSet := false
	for {
		fmt.Println("\n========== Engine Performance Estimator ==========")
		fmt.Println("1. Set All Inputs")
		fmt.Println("2. Run Turbojet with Afterburner Analysis")
		fmt.Println("3. Run Turbofan with Afterburner Analysis")
		fmt.Printf("4. Toggle Debug Mode (Currently: %s)\n", onOff(debugMode))
		fmt.Println("9. Exit")
		fmt.Println("==================================================")
		if inputsSet {
			fmt.Println("Status: Inputs ARE SET")
		} else {
			fmt.Println("Status: Inputs ARE NOT SET")
		}
		fmt.Print("Enter choice: ")
		var choice int
		if _, err := fmt.Fscan(in, &choice); err != nil {
			if _, rerr := in.ReadString('\n'); rerr != nil {
				return // stdin is gone
			}
			fmt.Println("Invalid option.")
			continue
		}
		switch choice {
		case 1:
			params = promptParameters(in)
			inputsSet = true
			fmt.Println("\nInputs successfully set!")
		case 2, 3:
			if !inputsSet {
				fmt.Println("\nError: please set inputs first.")
				continue
			}
			name := "turbojet"
			if choice == 3 {
				name = "turbofan"
			}
			engine, _ := brayton.EngineFromString(name, params)
			if err := analyze(engine); err != nil {
				fmt.Printf("\nError: %s\n", err)
			}
		case 4:
			debugMode = !debugMode
			fmt.Printf("Debug mode is now %s\n", onOff(debugMode))
		case 9:
			fmt.Println("Exiting program.")
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func readFloat(in *bufio.Reader, prompt string) float64 {
	for {
		fmt.Print(prompt)
		var v float64
		if _, err := fmt.Fscan(in, &v); err == nil {
			return v
		}
		if _, err := in.ReadString('\n'); err != nil {
			log.Fatal("stdin closed while reading inputs")
		}
	}
}

// promptParameters gathers every input in one pass, in the original
// console program's grouping.
func promptParameters(in *bufio.Reader) brayton.Parameters {
	fmt.Println("\n--- SET GLOBAL INPUTS ---")
	var p brayton.Parameters
	p.Air.Gamma = readFloat(in, "gamma_air: ")
	p.Exhaust.Gamma = readFloat(in, "gamma_gas: ")
	p.Air.Cp = readFloat(in, "cp_air (J/kg*K): ")
	p.Exhaust.Cp = readFloat(in, "cp_gas (J/kg*K): ")
	p.Air.R = readFloat(in, "R_air (J/kg*K): ")
	p.Exhaust.R = p.Air.R
	p.Fuel = brayton.Fuel{Name: "custom", LHV: readFloat(in, "Fuel Heating Value Q_HV (J/kg): ")}

	p.Mach = readFloat(in, "\nFlight Mach (M0): ")
	p.Ambient.Temperature = readFloat(in, "Ambient Temp (K): ")
	p.Ambient.Pressure = readFloat(in, "Ambient Pressure (Pa): ")

	fmt.Println("\nEfficiencies:")
	p.Eta.Inlet = readFloat(in, "eta_inlet: ")
	p.Eta.Compressor = readFloat(in, "eta_c: ")
	p.Eta.Fan = readFloat(in, "eta_f: ")
	p.Eta.Burner = readFloat(in, "eta_b: ")
	p.Eta.Turbine = readFloat(in, "eta_t: ")
	p.Eta.Afterburner = readFloat(in, "eta_ab: ")
	p.Eta.Nozzle = readFloat(in, "eta_n: ")

	fmt.Println("\nPressure Ratios & Temps:")
	p.Loss.Burner = readFloat(in, "pi_b: ")
	p.Loss.Afterburner = readFloat(in, "pi_ab: ")
	p.Loss.Mixer = readFloat(in, "pi_m: ")
	p.Limits.TurbineInlet = readFloat(in, "T_t4 (K): ")
	p.Limits.AfterburnerExit = readFloat(in, "T_t7 (K): ")

	fmt.Println("\nEngine Specific:")
	p.Jet.CompressorRatio = readFloat(in, "pi_c_jet: ")
	p.Fan.BypassRatio = readFloat(in, "BPR: ")
	p.Fan.FanRatio = readFloat(in, "pi_f: ")
	p.Fan.CompressorRatio = readFloat(in, "pi_c_fan: ")
	return p
}
