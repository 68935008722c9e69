package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/israel77-1995/Nocta-system/internal/api"
	"github.com/israel77-1995/Nocta-system/internal/ui"
	"github.com/israel77-1995/Nocta-system/internal/workflow"
	"github.com/israel77-1995/Nocta-system/pkg/config"
	"github.com/israel77-1995/Nocta-system/pkg/logger"
	"github.com/israel77-1995/Nocta-system/pkg/monitoring"
	"github.com/israel77-1995/Nocta-system/pkg/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.LogLevel)
	metrics := monitoring.NewMetricsCollector()
	backend := api.NewClient(&cfg.API, logg, metrics)
	display := ui.NewTerminalDisplay(os.Stdout)
	controller := workflow.NewController(backend, display, &cfg.Workflow, logg, metrics)

	logg.WithComponent("companion").WithField("api_url", cfg.API.BaseURL).Info("Starting Nocta companion")

	display.ScreenChanged(types.ScreenLogin)
	runShell(controller)
}

// shell holds the capture buffers that in the web client live in form
// fields until submission.
type shell struct {
	controller *workflow.Controller
	transcript strings.Builder
	vitals     workflow.VitalSignsInput
}

func runShell(controller *workflow.Controller) {
	sh := &shell{controller: controller}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Printf("[%s] > ", controller.CurrentScreen())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		sh.dispatch(line)
	}
}

func (sh *shell) dispatch(line string) {
	ctx := context.Background()
	command, arg := splitCommand(line)

	var err error
	switch command {
	case "help":
		printHelp()
	case "login":
		err = sh.controller.Login(ctx, arg)
	case "logout":
		err = sh.controller.Logout()
	case "patients":
		err = sh.controller.RefreshPatients(ctx)
	case "select":
		err = sh.controller.SelectPatient(ctx, arg)
	case "start":
		sh.transcript.Reset()
		sh.vitals = workflow.VitalSignsInput{}
		err = sh.controller.StartConsultation()
	case "history":
		patientID, name := splitCommand(arg)
		err = sh.controller.OpenHistory(ctx, patientID, name)
	case "open":
		err = sh.controller.OpenHistoryRecord(ctx, arg)
	case "note":
		if sh.transcript.Len() > 0 {
			sh.transcript.WriteString(" ")
		}
		sh.transcript.WriteString(arg)
	case "vitals":
		sh.setVitals(arg)
	case "submit":
		err = sh.controller.SubmitConsultation(ctx, sh.transcript.String(), sh.vitals)
		if err == nil {
			sh.transcript.Reset()
			sh.vitals = workflow.VitalSignsInput{}
		}
	case "approve":
		err = sh.controller.ApproveNote(ctx)
	case "image":
		path, clinicalContext := splitCommand(arg)
		err = sh.analyzeImage(ctx, path, clinicalContext)
	case "close":
		err = sh.controller.CloseImageModal()
	case "back":
		err = sh.back()
	default:
		fmt.Printf("Unknown command %q (try 'help')\n", command)
	}

	if err != nil {
		// User-facing messages were already shown by the controller.
		return
	}
}

// back picks the explicit back edge for the current screen; there is no
// navigation stack.
func (sh *shell) back() error {
	switch sh.controller.CurrentScreen() {
	case types.ScreenResults:
		return sh.controller.BackToConsultation()
	case types.ScreenImageModal:
		return sh.controller.CloseImageModal()
	case types.ScreenLogin, types.ScreenDashboard:
		return nil
	default:
		return sh.controller.BackToDashboard()
	}
}

// setVitals parses key=value pairs: bp=120/80 hr=72 temp=37.2 spo2=98
// rr=16 weight=80.5 height=178
func (sh *shell) setVitals(arg string) {
	for _, pair := range strings.Fields(arg) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			fmt.Printf("Ignoring %q (expected key=value)\n", pair)
			continue
		}
		switch key {
		case "bp":
			sh.vitals.BloodPressure = value
		case "hr":
			sh.vitals.HeartRate = value
		case "temp":
			sh.vitals.Temperature = value
		case "spo2":
			sh.vitals.OxygenSaturation = value
		case "rr":
			sh.vitals.RespiratoryRate = value
		case "weight":
			sh.vitals.Weight = value
		case "height":
			sh.vitals.Height = value
		default:
			fmt.Printf("Unknown vital %q\n", key)
		}
	}
}

func (sh *shell) analyzeImage(ctx context.Context, path, clinicalContext string) error {
	if path == "" {
		fmt.Println("Usage: image <file> [clinical context]")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Cannot read %s: %v\n", path, err)
		return nil
	}

	if err := sh.controller.OpenImageModal(); err != nil {
		return err
	}
	return sh.controller.AnalyzeImage(ctx, base64.StdEncoding.EncodeToString(data), clinicalContext)
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func printHelp() {
	fmt.Print(`Commands:
  login <clinician-id>        log in and load the patient list
  patients                    refresh the patient list
  select <patient-id>         open a patient's summary
  start                       begin a consultation for the patient
  note <text>                 append to the transcript
  vitals bp=120/80 hr=72 ...  set vital signs (temp, spo2, rr, weight, height)
  submit                      submit the consultation for AI processing
  approve                     approve the generated note
  history <patient-id>        show a patient's past consultations
  open <consultation-id>      open a past consultation
  image <file> [context]      analyze a clinical image
  close                       close the image modal
  back                        go back one screen
  logout                      return to the login screen
  quit                        exit
`)
}
