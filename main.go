package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"scheduler-sim/api"
	"scheduler-sim/config"
	"scheduler-sim/internal/core"
	"scheduler-sim/internal/report"
	"scheduler-sim/internal/schedulers"
	"scheduler-sim/internal/workload"
)

func main() {
	cfg := config.GetSimulatorConfig()

	// A workload file argument switches to the CLI report; otherwise serve
	// the JSON API for rendering front-ends.
	if len(os.Args) > 1 {
		if err := runReport(os.Stdout, os.Args[1], cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	handler := api.NewSchedulerHandlerImpl(cfg)
	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func runReport(w io.Writer, path string, cfg *config.SimulatorConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	request, err := workload.Load(f)
	if err != nil {
		return err
	}
	processes, err := request.Normalize()
	if err != nil {
		return err
	}

	reporter := report.NewReporter(cfg.GanttWidth)
	runs := []struct {
		title    string
		schedule func([]core.Process) schedulers.Result
	}{
		{"First Come First Serve", schedulers.ScheduleFirstComeFirstServe},
		{"Shortest Job First", schedulers.ScheduleShortestJobFirst},
		{"Shortest Remaining Time First", schedulers.ScheduleShortestRemainingTimeFirst},
	}
	for _, run := range runs {
		result := run.schedule(processes)
		response, err := schedulers.GenerateAnalytics(&result)
		if err != nil {
			return err
		}
		reporter.Write(w, run.title, response)
	}

	return nil
}
